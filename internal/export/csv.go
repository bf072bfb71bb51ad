package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lmarsden/mentorlog/internal/report"
)

// CSVExporter flattens all segments under a single header. CSV cannot carry
// multiple sheets, so the weekly partitioning collapses; rows keep their
// ascending date order.
type CSVExporter struct{}

// Export writes the report as CSV.
func (e *CSVExporter) Export(rep *report.Report, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(report.Columns); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, seg := range rep.Segments {
		for _, row := range seg.Rows {
			record := []string{row.Date, row.GroupName, row.Category, row.Activity, row.Duration}
			if err := cw.Write(record); err != nil {
				return fmt.Errorf("writing csv row: %w", err)
			}
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// Extension returns the file extension for this format.
func (e *CSVExporter) Extension() string {
	return "csv"
}
