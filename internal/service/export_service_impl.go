package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lmarsden/mentorlog/internal/export"
	"github.com/lmarsden/mentorlog/internal/report"
	"github.com/lmarsden/mentorlog/internal/repository"
)

type exportService struct {
	sessions  repository.SessionRepo
	exportDir string
}

func NewExportService(sessions repository.SessionRepo, exportDir string) ExportService {
	return &exportService{sessions: sessions, exportDir: exportDir}
}

// Run produces the export artifact. Every failure mode comes back as a result
// value; callers display Message whether or not Success is set. No file is
// written when the range holds no data.
func (s *exportService) Run(ctx context.Context, opts ExportOptions) ExportResult {
	rows, err := s.sessions.ListRange(ctx, opts.Start, opts.End)
	if err != nil {
		return ExportResult{Message: fmt.Sprintf("database error: %v", err)}
	}

	rep, err := report.Build(rows, opts.SeparateSheets)
	if err != nil {
		// Covers ErrNoData; its message is the user-facing text.
		return ExportResult{Message: err.Error()}
	}

	format := opts.Format
	if format == "" {
		format = "xlsx"
	}
	exporter, err := export.NewExporter(format)
	if err != nil {
		return ExportResult{Message: err.Error()}
	}

	if err := os.MkdirAll(s.exportDir, 0755); err != nil {
		return ExportResult{Message: fmt.Sprintf("creating export directory: %v", err)}
	}

	filename := opts.Filename
	if filename == "" {
		timestamp := time.Now().Format("20060102_150405")
		filename = fmt.Sprintf("mentorship_log_%s.%s", timestamp, exporter.Extension())
	}
	path := filepath.Join(s.exportDir, filename)

	f, err := os.Create(path)
	if err != nil {
		return ExportResult{Message: fmt.Sprintf("creating export file: %v", err)}
	}

	if err := exporter.Export(rep, f); err != nil {
		f.Close()
		_ = os.Remove(path) // don't leave a partial artifact behind
		return ExportResult{Message: err.Error()}
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return ExportResult{Message: err.Error()}
	}

	return ExportResult{
		Success: true,
		Message: fmt.Sprintf("Exported to %s", path),
		Path:    path,
	}
}
