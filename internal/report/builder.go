// Package report turns date-ranged session rows into week-bucketed segments
// for export. It is a pure projection: it never touches storage.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/lmarsden/mentorlog/internal/repository"
)

// ErrNoData means the queried range contained no sessions. A user-facing
// condition, not a crash.
var ErrNoData = errors.New("no data to export for the selected range")

// maxSegmentNameLen is the sheet-name limit imposed by the xlsx format.
// Truncation is applied verbatim, with no collision handling.
const maxSegmentNameLen = 31

// allSessionsSegment names the single segment produced when weekly
// partitioning is disabled.
const allSessionsSegment = "All Sessions"

// Columns is the fixed column order of every exported segment.
var Columns = []string{"Date", "Group Name", "Category", "Activity", "Duration"}

// Row is one fully rendered output row. Duration carries the raw stored
// values ("0h 90m" is not normalized to "1h 30m").
type Row struct {
	Date      string `yaml:"date"`
	GroupName string `yaml:"group_name"`
	Category  string `yaml:"category"`
	Activity  string `yaml:"activity"`
	Duration  string `yaml:"duration"`
}

// Segment is one sheet/section of the exported artifact.
type Segment struct {
	Name string `yaml:"name"`
	Rows []Row  `yaml:"rows"`
}

// Report is the full export payload: one segment per ISO week, or a single
// segment when weekly partitioning is off.
type Report struct {
	Segments []Segment `yaml:"segments"`
}

// WeekLabel derives the ISO week bucket label for a date, e.g. "Week 2 - 2024".
// Both the week number and the year follow ISO-8601 numbering, so dates in
// early January may be labeled with the previous year's week 52 or 53.
func WeekLabel(d time.Time) string {
	year, week := d.ISOWeek()
	return fmt.Sprintf("Week %d - %d", week, year)
}

// FormatDuration renders the stored duration without unit normalization.
func FormatDuration(hours, minutes int) string {
	return fmt.Sprintf("%dh %dm", hours, minutes)
}

// Build partitions export rows into segments. Input rows must already be in
// ascending date order (the repository range query guarantees this); week
// segments appear in the order their labels first occur in that sequence.
// Returns ErrNoData when rows is empty.
func Build(rows []repository.ExportRow, separateSheets bool) (*Report, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	if !separateSheets {
		seg := Segment{Name: allSessionsSegment}
		for _, r := range rows {
			seg.Rows = append(seg.Rows, renderRow(r))
		}
		return &Report{Segments: []Segment{seg}}, nil
	}

	var rep Report
	index := make(map[string]int)
	for _, r := range rows {
		label := WeekLabel(r.Date)
		i, seen := index[label]
		if !seen {
			i = len(rep.Segments)
			index[label] = i
			rep.Segments = append(rep.Segments, Segment{Name: truncateName(label)})
		}
		rep.Segments[i].Rows = append(rep.Segments[i].Rows, renderRow(r))
	}
	return &rep, nil
}

func renderRow(r repository.ExportRow) Row {
	return Row{
		Date:      r.Date.Format("2006-01-02"),
		GroupName: r.GroupName,
		Category:  r.Category,
		Activity:  r.ActivityDescription,
		Duration:  FormatDuration(r.DurationHours, r.DurationMinutes),
	}
}

func truncateName(name string) string {
	runes := []rune(name)
	if len(runes) <= maxSegmentNameLen {
		return name
	}
	return string(runes[:maxSegmentNameLen])
}
