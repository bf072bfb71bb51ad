// Package export writes week-bucketed reports to spreadsheet-style artifacts.
package export

import (
	"fmt"
	"io"

	"github.com/lmarsden/mentorlog/internal/report"
)

// Exporter defines the interface for all export formats.
type Exporter interface {
	Export(rep *report.Report, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format.
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "xlsx":
		return &XLSXExporter{}, nil
	case "csv":
		return &CSVExporter{}, nil
	case "yaml":
		return &YAMLExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: xlsx, csv, yaml)", format)
	}
}
