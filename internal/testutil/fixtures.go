package testutil

import (
	"time"

	"github.com/lmarsden/mentorlog/internal/domain"
)

// Date is a shorthand for constructing UTC calendar dates in tests.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DayLog options
type DayLogOption func(*domain.DayLog)

func WithNotes(notes string) DayLogOption {
	return func(d *domain.DayLog) {
		d.Notes = notes
	}
}

func NewTestDayLog(date time.Time, opts ...DayLogOption) *domain.DayLog {
	d := &domain.DayLog{Date: date}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Session options
type SessionOption func(*domain.MentorshipSession)

func WithGroup(name string) SessionOption {
	return func(s *domain.MentorshipSession) {
		s.GroupName = name
	}
}

func WithCategory(cat string) SessionOption {
	return func(s *domain.MentorshipSession) {
		s.Category = cat
	}
}

func WithActivity(desc string) SessionOption {
	return func(s *domain.MentorshipSession) {
		s.ActivityDescription = desc
	}
}

func WithDuration(hours, minutes int) SessionOption {
	return func(s *domain.MentorshipSession) {
		s.DurationHours = hours
		s.DurationMinutes = minutes
	}
}

func NewTestSession(dayLogID int64, opts ...SessionOption) *domain.MentorshipSession {
	s := &domain.MentorshipSession{
		DayLogID:        dayLogID,
		GroupName:       "Group 26",
		Category:        "1:1 Mentoring",
		DurationHours:   1,
		DurationMinutes: 0,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}
