package domain

import "fmt"

// MentorshipSession is one logged activity entry, owned by exactly one DayLog.
// DurationMinutes is stored as entered: values of 60 or more are legal and are
// never normalized into hours.
type MentorshipSession struct {
	ID                  int64
	DayLogID            int64
	GroupName           string
	Category            string
	ActivityDescription string
	DurationHours       int
	DurationMinutes     int
}

// TotalMinutes returns the derived total duration. It is never persisted.
func (s *MentorshipSession) TotalMinutes() int {
	return s.DurationHours*60 + s.DurationMinutes
}

// DurationLabel renders the stored duration verbatim, e.g. "1h 30m".
// A session stored as 0h/90m prints as "0h 90m".
func (s *MentorshipSession) DurationLabel() string {
	return fmt.Sprintf("%dh %dm", s.DurationHours, s.DurationMinutes)
}
