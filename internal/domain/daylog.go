package domain

import "time"

// DayLog is the per-calendar-date anchor that mentorship sessions attach to.
// At most one exists per date; deleting it removes its sessions.
type DayLog struct {
	ID    int64
	Date  time.Time
	Notes string
}
