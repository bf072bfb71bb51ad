package cli

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// parseDateArg parses a required YYYY-MM-DD date argument.
func parseDateArg(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: use YYYY-MM-DD", s)
	}
	return t, nil
}

// parseDateFlag parses an optional YYYY-MM-DD flag, returning nil when unset.
func parseDateFlag(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDateArg(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
