package fixture

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"tactics/internal/config"
	"tactics/internal/display"
)

const fixtureSource = "https://database.lichess.org/"

// Writer serializes per-category fixture files. Files are overwritten
// in place; a crash mid-write can leave a truncated file, which is
// acceptable for a one-time offline tool.
type Writer struct {
	cfg config.Config
}

func NewWriter(cfg config.Config) *Writer {
	return &Writer{cfg: cfg}
}

// Write replaces the category's fixture file with the given records.
func (w *Writer) Write(category string, records []Record) error {
	if err := os.MkdirAll(w.cfg.FixturesDir, 0o755); err != nil {
		return fmt.Errorf("failed to create fixtures directory: %w", err)
	}

	out := File{
		Description: fmt.Sprintf("High-quality %s tactical puzzles from Lichess database", strings.ToUpper(category)),
		Source:      fixtureSource,
		GeneratedAt: "auto-generated",
		Cases:       records,
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode fixtures: %w", err)
	}
	data = append(data, '\n')

	path := filepath.Join(w.cfg.FixturesDir, category+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	display.Success("Saved %d puzzles to %s", len(records), path)
	return nil
}
