package service

import (
	"context"
	"time"

	"github.com/lmarsden/mentorlog/internal/domain"
	"github.com/lmarsden/mentorlog/internal/repository"
)

// DayService implements find-or-create semantics for day logs, the attach
// point every session hangs off. Lookup and update paths report an absent day
// as (nil, nil), never as an error.
type DayService interface {
	GetDay(ctx context.Context, date time.Time) (*domain.DayLog, error)
	CreateDay(ctx context.Context, date time.Time, notes string) (*domain.DayLog, error)
	GetOrCreateDay(ctx context.Context, date time.Time) (*domain.DayLog, error)
	UpdateNotes(ctx context.Context, date time.Time, notes string) (*domain.DayLog, error)
	DeleteDay(ctx context.Context, date time.Time) (bool, error)
}

// SessionInput carries the caller-provided fields of a session. Hours and
// minutes are stored exactly as given; only the category is validated.
type SessionInput struct {
	GroupName           string
	Category            string
	ActivityDescription string
	Hours               int
	Minutes             int
}

type SessionService interface {
	// LogSession attaches a new session to the day for date, creating the day
	// if needed.
	LogSession(ctx context.Context, date time.Time, in SessionInput) (*domain.MentorshipSession, error)
	// ListSessionsForDay returns an empty slice when the day does not exist.
	ListSessionsForDay(ctx context.Context, date time.Time) ([]*domain.MentorshipSession, error)
	// UpdateSession replaces all fields; (nil, nil) when id is unknown.
	UpdateSession(ctx context.Context, id int64, in SessionInput) (*domain.MentorshipSession, error)
	// DeleteSession reports whether a session was removed; idempotent.
	DeleteSession(ctx context.Context, id int64) (bool, error)
}

// ExportOptions selects the rows and shape of an export run. Nil bounds leave
// the range open on that side; both bounds are inclusive.
type ExportOptions struct {
	Start          *time.Time
	End            *time.Time
	Filename       string
	Format         string
	SeparateSheets bool
}

// ExportResult is the full outcome of an export run. Failures are values,
// not errors: the front end shows Message either way.
type ExportResult struct {
	Success bool
	Message string
	Path    string
}

type ExportService interface {
	Run(ctx context.Context, opts ExportOptions) ExportResult
}

// SeedResult summarizes a sample-data population run.
type SeedResult struct {
	DaysCleared     int64
	DaysCreated     int
	SessionsCreated int
}

// SeedService replaces a date range with generated weekday sessions,
// atomically per run.
type SeedService interface {
	Populate(ctx context.Context, start, end time.Time, groupName string) (*SeedResult, error)
}

// Stats is a read-only snapshot used for data verification.
type Stats struct {
	DayCount        int
	SessionCount    int
	AvgDailyMinutes float64
	Groups          []repository.GroupSummary
}

type StatsService interface {
	Collect(ctx context.Context) (*Stats, error)
}
