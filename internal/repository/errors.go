package repository

import (
	"errors"
	"strings"
)

// Sentinel errors returned by repositories. Callers branch with errors.Is.
var (
	// ErrNotFound means the requested row does not exist. Lookup paths in the
	// service layer translate it to an absent result rather than a failure.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateDay means a day log already exists for the given date.
	// Recoverable: re-fetch via GetOrCreateDay semantics.
	ErrDuplicateDay = errors.New("day log already exists for date")
)

// isUniqueViolation reports whether err is a SQLite UNIQUE constraint failure.
// modernc.org/sqlite surfaces these as plain errors carrying the constraint
// message, so string matching is the available signal.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
