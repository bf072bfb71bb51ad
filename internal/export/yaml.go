package export

import (
	"io"

	"github.com/lmarsden/mentorlog/internal/report"
	"gopkg.in/yaml.v3"
)

// YAMLExporter writes the full report structure, segment names included.
type YAMLExporter struct{}

// Export writes the report as YAML.
func (e *YAMLExporter) Export(rep *report.Report, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(rep)
}

// Extension returns the file extension for this format.
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
