// Package export persists pipeline artifacts as flat JSON files and bundles
// them into a downloadable zip archive.
package export

import (
	"archive/zip"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// Artifact file names within the data directory and the bundle.
const (
	RawEventsFile = "raw_events.json"
	PromptsFile   = "prompts.json"
	ReportFile    = "report.json"
)

// Exporter writes pipeline artifacts under a data directory.
type Exporter struct {
	dir string
}

// New creates an exporter rooted at dir, creating it if needed.
func New(dir string) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}
	return &Exporter{dir: dir}, nil
}

// WriteEvents persists the raw event dataset.
func (e *Exporter) WriteEvents(events interface{}) error {
	return e.writeJSON(RawEventsFile, events)
}

// WritePrompts persists the exact prompts sent to the external capability.
func (e *Exporter) WritePrompts(prompts map[string]string) error {
	return e.writeJSON(PromptsFile, prompts)
}

// WriteReport persists the full daily report.
func (e *Exporter) WriteReport(report interface{}) error {
	return e.writeJSON(ReportFile, report)
}

// Bundle writes a zip archive of all existing artifacts to w. Missing files
// are skipped; an analysis that never ran simply yields a smaller bundle.
func (e *Exporter) Bundle(w io.Writer) error {
	zw := zip.NewWriter(w)

	for _, name := range []string{RawEventsFile, PromptsFile, ReportFile} {
		path := filepath.Join(e.dir, name)
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}

		f, err := zw.Create(name)
		if err != nil {
			return fmt.Errorf("failed to add %s to bundle: %w", name, err)
		}
		if _, err := f.Write(data); err != nil {
			return fmt.Errorf("failed to write %s to bundle: %w", name, err)
		}
	}

	return zw.Close()
}

// AttachmentName returns a timestamped file name for bundle downloads.
func (e *Exporter) AttachmentName(now time.Time) string {
	return fmt.Sprintf("zonewatch_analysis_%s.zip", now.Format("20060102_150405"))
}

func (e *Exporter) writeJSON(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(e.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}
