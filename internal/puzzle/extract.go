package puzzle

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"tactics/internal/config"
	"tactics/internal/display"
)

// Extractor streams the puzzle database and collects rows matching a
// category's themes and the quality thresholds.
type Extractor struct {
	cfg config.Config
}

func NewExtractor(cfg config.Config) *Extractor {
	return &Extractor{cfg: cfg}
}

// Extract scans csvPath in file order and accepts rows whose themes
// intersect the given set and whose rating, popularity, and play count
// pass the configured thresholds. Scanning stops as soon as limit rows
// are accepted, so later rows are never considered even if they score
// higher. The accepted rows are returned sorted by popularity, best
// first.
func (e *Extractor) Extract(csvPath, category string, themes []string, limit int) ([]Record, error) {
	display.Scan("Extracting %s puzzles (max: %d)...", strings.ToUpper(category), limit)

	f, err := os.Open(csvPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open puzzle database: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read database header: %w", err)
	}
	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	var records []Record
	for len(records) < limit {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read database row: %w", err)
		}

		rec, err := cols.parse(row)
		if err != nil {
			return nil, err
		}

		if !rec.HasAnyTheme(themes) {
			continue
		}
		if rec.Popularity < e.cfg.MinPopularity {
			continue
		}
		if rec.Rating < e.cfg.MinRating || rec.Rating > e.cfg.MaxRating {
			continue
		}
		if rec.NbPlays < e.cfg.MinPlays {
			continue
		}

		records = append(records, rec)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Popularity > records[j].Popularity
	})

	display.Detail("Found %d high-quality %s puzzles", len(records), strings.ToUpper(category))
	return records, nil
}

// columns maps database header names to field indices, so column order
// changes upstream do not break extraction.
type columns struct {
	id, fen, moves, rating, popularity, plays, themes int
}

func mapColumns(header []string) (columns, error) {
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[name] = i
	}

	var c columns
	for _, col := range []struct {
		name string
		dst  *int
	}{
		{"PuzzleId", &c.id},
		{"FEN", &c.fen},
		{"Moves", &c.moves},
		{"Rating", &c.rating},
		{"Popularity", &c.popularity},
		{"NbPlays", &c.plays},
		{"Themes", &c.themes},
	} {
		i, ok := idx[col.name]
		if !ok {
			return columns{}, fmt.Errorf("puzzle database missing column %q", col.name)
		}
		*col.dst = i
	}
	return c, nil
}

func (c columns) parse(row []string) (Record, error) {
	rating, err := strconv.Atoi(row[c.rating])
	if err != nil {
		return Record{}, fmt.Errorf("puzzle %s: bad rating %q", row[c.id], row[c.rating])
	}
	popularity, err := strconv.Atoi(row[c.popularity])
	if err != nil {
		return Record{}, fmt.Errorf("puzzle %s: bad popularity %q", row[c.id], row[c.popularity])
	}
	plays, err := strconv.Atoi(row[c.plays])
	if err != nil {
		return Record{}, fmt.Errorf("puzzle %s: bad play count %q", row[c.id], row[c.plays])
	}

	return Record{
		ID:         row[c.id],
		FEN:        row[c.fen],
		Moves:      strings.Fields(row[c.moves]),
		Rating:     rating,
		Popularity: popularity,
		NbPlays:    plays,
		Themes:     strings.Fields(row[c.themes]),
	}, nil
}
