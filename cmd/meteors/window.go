package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteors/internal/core"
	"github.com/vovakirdan/meteors/internal/platform/gui"
	"github.com/vovakirdan/meteors/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Uses the same controls as 'meteors play'; rotation follows held keys and a
mouse click leaves the title screen. Your personal best is kept in the
application data directory and every run is also written to the score
database.`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, logFile := openLogFile()
	defer logFile.Close()

	game, err := newGame(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	records, err := gui.OpenRecordBook("meteors")
	if err != nil {
		logger.Warn("personal best will not be saved", "err", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	runErr := gui.Run(game, store, records, cfg, logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
