// meteors is an orbital arcade game: keep the planet turning so falling
// meteors miss you while you catch stars and bombs.
//
// Usage:
//
//	meteors play             - Play in the terminal
//	meteors window           - Play in a desktop window
//	meteors serve            - Start SSH server for remote play
//	meteors scores           - Show high scores
//	meteors waves list       - List built-in or custom wave scripts
//	meteors waves check      - Validate wave and level scripts
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.meteors/scores.db)
//	--config <path>      - Use a custom meteors.yaml
//	--difficulty <name>  - easy, normal, hard or fixed
//	--scripts <dir>      - Load waves/ and levels/ from a directory
//	--level <path>       - Queue a level script when play starts
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteors/internal/config"
	"github.com/vovakirdan/meteors/internal/games/meteors"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagScripts    string
	flagLevel      string
	flagLog        string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "meteors",
	Short: "Meteors - dodge the rain, catch the stars",
	Long: `Meteors is an orbital arcade game. You stand on top of a small planet
and turn the whole world so meteors land anywhere but on you. Catch stars
to charge up and reach the next level, catch bombs to clear the sky.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores
  waves    - Inspect wave and level scripts

Examples:
  meteors play
  meteors play --difficulty hard --level levels/02-gauntlet.txt
  meteors window --seed 42
  meteors serve --ssh :2222
  meteors waves check --scripts ./my-waves`,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.meteors/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom meteors.yaml")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagScripts, "scripts", "", "Directory with waves/ and levels/ (default: built-in scripts)")
	pf.StringVar(&flagLevel, "level", "", "Level script queued when play starts")
	pf.StringVar(&flagLog, "log", "", "Log file (default: ~/.meteors/meteors.log)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(wavesCmd)
}

// loadConfig reads the game config and applies the difficulty preset.
func loadConfig() (config.MeteorsConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.MeteorsConfig{}, err
	}
	cfg, err := config.LoadMeteors(flagConfig)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, nil
}

// scripts returns the wave catalogue selected by --scripts.
func scripts() fs.FS {
	if flagScripts == "" {
		return meteors.Scripts()
	}
	return os.DirFS(flagScripts)
}

// gameOptions turns the command line flags into game options.
func gameOptions() ([]meteors.Option, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	opts := []meteors.Option{
		meteors.WithConfig(cfg),
		meteors.WithScripts(scripts()),
	}
	if flagLevel != "" {
		if err := meteors.NewLoader(scripts()).Check(flagLevel); err != nil {
			return nil, err
		}
		opts = append(opts, meteors.WithLevel(flagLevel))
	}
	return opts, nil
}

// newGame builds a game from the command line flags.
func newGame(logger *log.Logger) (*meteors.Game, error) {
	opts, err := gameOptions()
	if err != nil {
		return nil, err
	}
	return meteors.New(append(opts, meteors.WithLogger(logger))...), nil
}

// openLogFile opens the log file used while the screen belongs to the game.
// The returned closer is never nil.
func openLogFile() (*log.Logger, io.Closer) {
	path := flagLog
	if path == "" {
		if dir := config.DataDir(); dir != "" {
			path = filepath.Join(dir, "meteors.log")
		}
	}
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot create log directory: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: cannot open log file: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "meteors",
	})
	return logger, f
}
