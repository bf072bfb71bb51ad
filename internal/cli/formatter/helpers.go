package formatter

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lmarsden/mentorlog/internal/domain"
)

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// CategoryBadge returns a colored category label.
func CategoryBadge(category string) string {
	switch category {
	case "1:1 Mentoring":
		return StyleGreen.Render(category)
	case "Code Review":
		return StyleBlue.Render(category)
	case "Career Planning":
		return StyleYellow.Render(category)
	case "Pair Programming":
		return StyleGreen.Render(category)
	default:
		return StyleFg.Render(category)
	}
}

// DurationCell renders a session duration, dimming zero-length entries.
func DurationCell(s *domain.MentorshipSession) string {
	label := s.DurationLabel()
	if s.TotalMinutes() == 0 {
		return StyleDim.Render(label)
	}
	return label
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// SessionRows converts sessions into table rows for RenderTable.
func SessionRows(sessions []*domain.MentorshipSession) [][]string {
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			StyleDim.Render(strconv.FormatInt(s.ID, 10)),
			s.GroupName,
			CategoryBadge(s.Category),
			s.ActivityDescription,
			DurationCell(s),
		})
	}
	return rows
}

// SessionTableHeaders lists the columns used by session tables.
var SessionTableHeaders = []string{"ID", "Group", "Category", "Activity", "Duration"}
