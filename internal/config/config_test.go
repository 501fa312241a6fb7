package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default(t.TempDir())
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 50, cfg.MinPopularity)
	assert.Equal(t, 800, cfg.MinRating)
	assert.Equal(t, 2200, cfg.MaxRating)
	assert.Equal(t, 50, cfg.MinPlays)
	assert.Equal(t, DefaultMaxPuzzles, cfg.MaxPuzzles)
	assert.Len(t, cfg.Categories, 8)
}

func TestValidateRejectsBadValues(t *testing.T) {
	base := Default(t.TempDir())

	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty url", func(c *Config) { c.DatabaseURL = "" }},
		{"malformed url", func(c *Config) { c.DatabaseURL = "not-a-url" }},
		{"zero max puzzles", func(c *Config) { c.MaxPuzzles = 0 }},
		{"inverted rating band", func(c *Config) { c.MaxRating = c.MinRating - 1 }},
		{"no categories", func(c *Config) { c.Categories = nil }},
		{"category without themes", func(c *Config) {
			c.Categories = []Category{{Name: "pin"}}
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := base
			tc.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestCachePaths(t *testing.T) {
	cfg := Default("base")
	assert.Equal(t, filepath.Join("base", "downloads", "lichess_db_puzzle.csv.zst"), cfg.CompressedPath())
	assert.Equal(t, filepath.Join("base", "downloads", "lichess_db_puzzle.csv"), cfg.DatabasePath())
}
