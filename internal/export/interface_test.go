package export

import (
	"testing"

	"github.com/lmarsden/mentorlog/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExporter(t *testing.T) {
	for _, format := range []string{"xlsx", "csv", "yaml"} {
		exp, err := NewExporter(format)
		require.NoError(t, err, "format %s", format)
		assert.Equal(t, format, exp.Extension())
	}
}

func TestNewExporter_Unsupported(t *testing.T) {
	_, err := NewExporter("pdf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

// twoWeekReport is the shared fixture: two weekly segments, one row each.
func twoWeekReport() *report.Report {
	return &report.Report{
		Segments: []report.Segment{
			{
				Name: "Week 1 - 2024",
				Rows: []report.Row{
					{Date: "2024-01-01", GroupName: "G1", Category: "Code Review", Activity: "Linting pass", Duration: "1h 0m"},
				},
			},
			{
				Name: "Week 2 - 2024",
				Rows: []report.Row{
					{Date: "2024-01-08", GroupName: "G2", Category: "Pair Programming", Activity: "", Duration: "0h 90m"},
				},
			},
		},
	}
}
