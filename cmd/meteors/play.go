package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/meteors/internal/core"
	"github.com/vovakirdan/meteors/internal/platform/tui"
	"github.com/vovakirdan/meteors/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  A/Left, D/Right - Turn the planet
  Space           - Detonate a bomb
  P/Esc           - Pause
  Tab             - Debug overlay
  R               - Toggle random meteors
  +/-             - Faster/slower meteors
  1-9             - Launch a wave from the catalogue
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Slower meteors, fewer stars per level, full bombs
  normal - The configured baseline
  hard   - Faster meteors, more stars per level, no starting bomb
  fixed  - Meteors do not speed up between levels

Examples:
  meteors play
  meteors play --difficulty easy
  meteors play --config ./my-meteors.yaml --seed 7`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	logger, logFile := openLogFile()
	defer logFile.Close()

	game, err := newGame(logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
