package repository

import "time"

// dateLayout is the storage format for calendar dates. Lexicographic order of
// stored values matches chronological order, which the range query relies on.
const dateLayout = "2006-01-02"

// normalizeDate truncates a timestamp to its calendar date in UTC. All
// repository date parameters pass through this so two times on the same day
// address the same day log.
func normalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// parseDate parses a stored date string back into a UTC calendar date.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
