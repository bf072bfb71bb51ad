package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalMinutes(t *testing.T) {
	s := &MentorshipSession{DurationHours: 2, DurationMinutes: 15}
	assert.Equal(t, 135, s.TotalMinutes())
}

func TestDurationLabel_RawValuesPreserved(t *testing.T) {
	tests := []struct {
		name    string
		hours   int
		minutes int
		want    string
	}{
		{"zero", 0, 0, "0h 0m"},
		{"typical", 1, 30, "1h 30m"},
		{"unnormalized minutes stay raw", 0, 90, "0h 90m"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &MentorshipSession{DurationHours: tt.hours, DurationMinutes: tt.minutes}
			assert.Equal(t, tt.want, s.DurationLabel())
		})
	}
}
