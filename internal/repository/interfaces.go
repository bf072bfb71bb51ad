package repository

import (
	"context"
	"time"

	"github.com/lmarsden/mentorlog/internal/domain"
)

// ExportRow is a joined view of a session with its day log's date, used by the
// report builder. Rows come back ordered by date ascending.
type ExportRow struct {
	Date                time.Time
	GroupName           string
	Category            string
	ActivityDescription string
	DurationHours       int
	DurationMinutes     int
}

// GroupSummary aggregates logged time per group name, for verification output.
type GroupSummary struct {
	GroupName    string
	SessionCount int
	TotalMinutes int
}

type DayLogRepo interface {
	// Create inserts a new day log and assigns its ID. Returns ErrDuplicateDay
	// if a row for the same date already exists.
	Create(ctx context.Context, d *domain.DayLog) error
	// GetByDate returns ErrNotFound when no day log exists for the date.
	GetByDate(ctx context.Context, date time.Time) (*domain.DayLog, error)
	// UpdateNotes overwrites the notes of the day log for the given date.
	// Returns ErrNotFound when the day does not exist.
	UpdateNotes(ctx context.Context, date time.Time, notes string) (*domain.DayLog, error)
	// DeleteByDate removes the day log and, via the FK cascade, its sessions.
	// Reports whether a row was deleted.
	DeleteByDate(ctx context.Context, date time.Time) (bool, error)
	// DeleteRange removes all day logs with start <= date <= end, cascading to
	// their sessions, and reports how many days were removed.
	DeleteRange(ctx context.Context, start, end time.Time) (int64, error)
	List(ctx context.Context) ([]*domain.DayLog, error)
	Count(ctx context.Context) (int, error)
}

type SessionRepo interface {
	// Create inserts a new session and assigns its ID.
	Create(ctx context.Context, s *domain.MentorshipSession) error
	// GetByID returns ErrNotFound when no session has the given id.
	GetByID(ctx context.Context, id int64) (*domain.MentorshipSession, error)
	// ListByDayLog returns the day's sessions in insertion (id) order.
	ListByDayLog(ctx context.Context, dayLogID int64) ([]*domain.MentorshipSession, error)
	// Update replaces all mutable fields of the session with the given ID.
	// Returns ErrNotFound when no row matched.
	Update(ctx context.Context, s *domain.MentorshipSession) error
	// Delete reports whether a row existed and was removed. Deleting a
	// nonexistent id is not an error.
	Delete(ctx context.Context, id int64) (bool, error)
	// ListRange returns joined export rows ordered by date ascending. Nil
	// bounds leave that side of the range open; bounds are inclusive.
	ListRange(ctx context.Context, start, end *time.Time) ([]ExportRow, error)
	Count(ctx context.Context) (int, error)
	GroupSummaries(ctx context.Context) ([]GroupSummary, error)
}
