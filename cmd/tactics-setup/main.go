// Package main implements the one-time tactical puzzle setup tool. It
// downloads the Lichess puzzle database, filters it by quality per
// tactical pattern, converts the survivors to JSON fixtures for the
// tutor application, and writes a completion marker.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"tactics/internal/config"
	"tactics/internal/display"
	"tactics/internal/fetch"
	"tactics/internal/fixture"
	"tactics/internal/puzzle"
	"tactics/internal/setup"
	"tactics/internal/zstd"
)

func main() {
	var (
		maxPuzzles = flag.Int("max-puzzles", config.DefaultMaxPuzzles, "Maximum number of puzzles to extract per pattern")
		force      = flag.Bool("force", false, "Force re-run setup without prompting")
	)
	flag.Parse()

	cfg := config.Default(".")
	cfg.MaxPuzzles = *maxPuzzles
	if err := cfg.Validate(); err != nil {
		display.Fail("%v", err)
		os.Exit(1)
	}

	display.Banner(
		"🎯 Chess Tutor - Tactical Puzzles Setup",
		fmt.Sprintf("Configuration: %d puzzles per pattern", cfg.MaxPuzzles),
	)
	fmt.Println()

	tool := zstd.New()
	runner := setup.NewRunner(
		cfg,
		tool,
		fetch.New(cfg, tool),
		puzzle.NewExtractor(cfg),
		fixture.NewConverter(),
		fixture.NewWriter(cfg),
		setup.InteractiveConfirmer{},
	)

	total, err := runner.Run(context.Background(), *force)
	if err != nil {
		if errors.Is(err, setup.ErrDeclined) {
			fmt.Println("Exiting...")
			return
		}
		display.Fail("%v", err)
		os.Exit(1)
	}

	display.Banner(fmt.Sprintf("✅ Setup complete! %d tactical puzzles are ready to use.", total))
	printNextSteps(cfg)
}

func printNextSteps(cfg config.Config) {
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Refresh your Chess Tutor app (if running)")
	fmt.Println("2. The warning banner will automatically disappear")
	fmt.Println("   (The app detects Lichess puzzles by checking the fixture metadata)")
	fmt.Println("3. Go to http://localhost:3050/learning")
	fmt.Println("4. Select a coach and practice tactical patterns!")
	fmt.Println()
	fmt.Printf("Note: The downloaded database is cached in %s.\n", cfg.DownloadDir)
	fmt.Println("      You can delete it to save space if needed.")
}
