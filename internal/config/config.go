// Package config defines the immutable configuration shared by all
// setup components.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

const (
	// DefaultDatabaseURL is the public Lichess puzzle database export.
	DefaultDatabaseURL = "https://database.lichess.org/lichess_db_puzzle.csv.zst"

	// DefaultMaxPuzzles caps the number of puzzles kept per pattern.
	DefaultMaxPuzzles = 20

	compressedName   = "lichess_db_puzzle.csv.zst"
	decompressedName = "lichess_db_puzzle.csv"
)

// Category maps one fixture pattern name to the Lichess themes that
// qualify a puzzle for it.
type Category struct {
	Name   string   `validate:"required"`
	Themes []string `validate:"required,min=1"`
}

// Config carries every tunable of the setup tool: quality thresholds,
// filesystem layout, and the pattern-to-theme mapping. It is built once
// at startup and passed by value into each component.
type Config struct {
	DatabaseURL string `validate:"required,url"`
	DownloadDir string `validate:"required"`
	FixturesDir string `validate:"required"`
	MarkerPath  string `validate:"required"`

	// Quality thresholds applied uniformly across categories.
	MinPopularity int `validate:"min=0"`
	MinRating     int `validate:"min=0"`
	MaxRating     int `validate:"gtefield=MinRating"`
	MinPlays      int `validate:"min=0"`

	// MaxPuzzles caps accepted rows per category.
	MaxPuzzles int `validate:"min=1"`

	Categories []Category `validate:"required,min=1,dive"`
}

// Default returns the production configuration rooted at baseDir.
func Default(baseDir string) Config {
	return Config{
		DatabaseURL: DefaultDatabaseURL,
		DownloadDir: filepath.Join(baseDir, "downloads"),
		FixturesDir: filepath.Join(baseDir, "fixtures", "tactics"),
		MarkerPath:  filepath.Join(baseDir, ".tactical_puzzles_configured"),

		MinPopularity: 50,
		MinRating:     800,
		MaxRating:     2200,
		MinPlays:      50,

		MaxPuzzles: DefaultMaxPuzzles,

		Categories: []Category{
			{Name: "pin", Themes: []string{"pin"}},
			{Name: "fork", Themes: []string{"fork"}},
			{Name: "skewer", Themes: []string{"skewer"}},
			{Name: "discovered_check", Themes: []string{"discoveredAttack"}},
			{Name: "double_attack", Themes: []string{"doubleCheck", "fork"}},
			{Name: "overloading", Themes: []string{"overloading"}},
			{Name: "back_rank_weakness", Themes: []string{"backRankMate"}},
			{Name: "trapped_piece", Themes: []string{"trappedPiece"}},
		},
	}
}

var validate = validator.New()

// Validate checks the configuration for internal consistency.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// CompressedPath is the cache location of the downloaded archive.
func (c Config) CompressedPath() string {
	return filepath.Join(c.DownloadDir, compressedName)
}

// DatabasePath is the cache location of the decompressed CSV database.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DownloadDir, decompressedName)
}
