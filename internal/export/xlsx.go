package export

import (
	"fmt"
	"io"

	"github.com/lmarsden/mentorlog/internal/report"
	"github.com/xuri/excelize/v2"
)

// XLSXExporter writes one worksheet per report segment. This is the
// compatibility-sensitive default format: sheet names carry the week labels
// and columns follow the fixed report order.
type XLSXExporter struct{}

// Export writes the report as an xlsx workbook.
func (e *XLSXExporter) Export(rep *report.Report, w io.Writer) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, seg := range rep.Segments {
		if i == 0 {
			// Reuse the default sheet for the first segment.
			if err := f.SetSheetName(f.GetSheetName(0), seg.Name); err != nil {
				return fmt.Errorf("naming sheet %q: %w", seg.Name, err)
			}
		} else {
			if _, err := f.NewSheet(seg.Name); err != nil {
				return fmt.Errorf("creating sheet %q: %w", seg.Name, err)
			}
		}

		header := make([]any, len(report.Columns))
		for c, col := range report.Columns {
			header[c] = col
		}
		if err := f.SetSheetRow(seg.Name, "A1", &header); err != nil {
			return fmt.Errorf("writing header of %q: %w", seg.Name, err)
		}

		for r, row := range seg.Rows {
			cell, err := excelize.CoordinatesToCellName(1, r+2)
			if err != nil {
				return fmt.Errorf("addressing row %d of %q: %w", r+2, seg.Name, err)
			}
			values := []any{row.Date, row.GroupName, row.Category, row.Activity, row.Duration}
			if err := f.SetSheetRow(seg.Name, cell, &values); err != nil {
				return fmt.Errorf("writing row %d of %q: %w", r+2, seg.Name, err)
			}
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// Extension returns the file extension for this format.
func (e *XLSXExporter) Extension() string {
	return "xlsx"
}
