// Package setup orchestrates the tactical puzzle setup: dependency
// check, database fetch, per-category extraction and conversion, and
// the completion marker.
package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tactics/internal/config"
	"tactics/internal/display"
	"tactics/internal/fixture"
	"tactics/internal/puzzle"
)

// ErrDeclined is returned when the user answers no to the re-run prompt.
var ErrDeclined = errors.New("setup declined")

// Tool abstracts the external decompression binary.
type Tool interface {
	Installed(ctx context.Context) bool
	Install(ctx context.Context) error
}

// Fetcher produces the decompressed puzzle database path.
type Fetcher interface {
	Fetch(ctx context.Context) (string, error)
}

// Extractor collects raw puzzle rows for one category.
type Extractor interface {
	Extract(csvPath, category string, themes []string, limit int) ([]puzzle.Record, error)
}

// Converter turns a raw row into a fixture record.
type Converter interface {
	Convert(rec puzzle.Record, category string) (fixture.Record, error)
}

// Writer persists one category's fixture records.
type Writer interface {
	Write(category string, records []fixture.Record) error
}

// Runner drives the ordered setup steps. Every failure is fatal except
// per-record conversion errors and categories with no matching rows,
// which are logged and skipped.
type Runner struct {
	cfg       config.Config
	tool      Tool
	fetcher   Fetcher
	extractor Extractor
	converter Converter
	writer    Writer
	marker    *Marker
	confirm   Confirmer
}

func NewRunner(cfg config.Config, tool Tool, fetcher Fetcher, extractor Extractor, converter Converter, writer Writer, confirm Confirmer) *Runner {
	return &Runner{
		cfg:       cfg,
		tool:      tool,
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
		writer:    writer,
		marker:    NewMarker(cfg.MarkerPath),
		confirm:   confirm,
	}
}

// Run executes the full setup and returns the total number of puzzles
// written. A previous completion marker triggers the confirmation flow
// unless force is set.
func (r *Runner) Run(ctx context.Context, force bool) (int, error) {
	if r.marker.Exists() {
		if !force {
			display.Warn("Tactical puzzles are already configured!")
			ok, err := r.confirm.Confirm("Do you want to re-run the setup? (y/N): ")
			if err != nil {
				return 0, err
			}
			if !ok {
				return 0, ErrDeclined
			}
		}
		if err := r.marker.Remove(); err != nil {
			return 0, err
		}
	}

	display.Step("Step 1: Checking dependencies...")
	if err := r.ensureTool(ctx); err != nil {
		return 0, err
	}
	fmt.Println()

	display.Step("Step 2: Downloading Lichess puzzle database...")
	csvPath, err := r.fetcher.Fetch(ctx)
	if err != nil {
		return 0, err
	}
	fmt.Println()

	display.Step("Step 3: Extracting puzzles for each tactical pattern...")
	total := 0
	for _, cat := range r.cfg.Categories {
		n, err := r.runCategory(csvPath, cat)
		if err != nil {
			return 0, err
		}
		total += n
	}
	fmt.Println()

	display.Step("Step 4: Finalizing setup...")
	runID, err := r.marker.Create()
	if err != nil {
		return 0, err
	}
	display.Success("Created setup marker at %s (run %s)", r.marker.Path(), runID)
	display.Detail("(The app will auto-detect Lichess puzzles from fixture metadata)")
	fmt.Println()

	return total, nil
}

func (r *Runner) ensureTool(ctx context.Context) error {
	if r.tool.Installed(ctx) {
		display.Success("zstd is installed")
		return nil
	}

	display.Warn("zstd not found (required for decompression)")
	display.Info("Installing zstd...")
	if err := r.tool.Install(ctx); err != nil {
		return fmt.Errorf("failed to install zstd: %w", err)
	}
	if !r.tool.Installed(ctx) {
		return fmt.Errorf("zstd still unavailable after installation")
	}
	display.Success("zstd installed successfully")
	return nil
}

// runCategory extracts, converts, and writes one category, returning
// the number of fixture records written.
func (r *Runner) runCategory(csvPath string, cat config.Category) (int, error) {
	rows, err := r.extractor.Extract(csvPath, cat.Name, cat.Themes, r.cfg.MaxPuzzles)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 {
		display.Warn("Warning: No puzzles found for %s", strings.ToUpper(cat.Name))
		return 0, nil
	}

	records := make([]fixture.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := r.converter.Convert(row, cat.Name)
		if err != nil {
			var convErr *fixture.ConversionError
			if errors.As(err, &convErr) {
				display.Warn("Skipping puzzle %s: %s", convErr.PuzzleID, convErr.Reason)
				continue
			}
			return 0, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		display.Warn("Warning: No puzzles found for %s", strings.ToUpper(cat.Name))
		return 0, nil
	}

	if err := r.writer.Write(cat.Name, records); err != nil {
		return 0, err
	}
	return len(records), nil
}
