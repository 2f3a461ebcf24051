package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/meteors/internal/games/meteors"
)

var wavesCmd = &cobra.Command{
	Use:   "waves",
	Short: "Inspect wave and level scripts",
	Long: `Inspect the wave catalogue. Without --scripts the built-in scripts are used.

A wave script has one event per line, "<ms> <angle-deg> [speed]" for a
meteor or "<ms> random <off|interval-ms> [curve-percent]" to control random
spawning. Level scripts list "<ms> <wave path>" entries and may carry their
own random lines. Blank lines and # comments are ignored.`,
}

var wavesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List waves and levels",
	Args:  cobra.NoArgs,
	Run:   runWavesList,
}

var wavesCheckCmd = &cobra.Command{
	Use:   "check [script...]",
	Short: "Validate scripts",
	Long: `Parse scripts and report every syntax error with its line.
Without arguments the whole catalogue is checked.

Examples:
  meteors waves check
  meteors waves check --scripts ./my-waves waves/boss.txt`,
	Run: runWavesCheck,
}

func init() {
	wavesCmd.AddCommand(wavesListCmd)
	wavesCmd.AddCommand(wavesCheckCmd)
}

func runWavesList(cmd *cobra.Command, args []string) {
	loader := meteors.NewLoader(scripts())

	waves, err := loader.Waves()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	levels, err := loader.Levels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Waves (hot-keys in play):")
	fmt.Println()
	for i, name := range waves {
		key := " "
		if i < 9 {
			key = fmt.Sprintf("%d", i+1)
		}
		detail := ""
		if w, err := loader.LoadWave(name, 0); err == nil {
			spawns, controls := w.Pending()
			detail = fmt.Sprintf("%3d meteors %2d random  %v", spawns, controls, w.Duration())
		}
		fmt.Printf("  %s  %-24s %s\n", key, name, detail)
	}

	fmt.Println()
	fmt.Println("Levels:")
	fmt.Println()
	for _, name := range levels {
		fmt.Printf("  %s\n", name)
	}
	fmt.Println()
	fmt.Println("Run 'meteors play --level <path>' to start with a level.")
}

func runWavesCheck(cmd *cobra.Command, args []string) {
	loader := meteors.NewLoader(scripts())

	names := args
	if len(names) == 0 {
		waves, err := loader.Waves()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		levels, err := loader.Levels()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		names = append(waves, levels...)
	}

	failed := 0
	for _, name := range names {
		err := loader.Check(name)
		switch {
		case err == nil:
			fmt.Printf("  ok    %s\n", name)
			continue
		case errors.Is(err, meteors.ErrSyntax):
			fmt.Printf("  FAIL  %s\n", name)
		default:
			fmt.Printf("  ERROR %s\n", name)
		}
		failed++
		fmt.Printf("        %s\n", strings.ReplaceAll(err.Error(), "\n", "\n        "))
	}

	fmt.Println()
	if failed > 0 {
		fmt.Printf("%d of %d scripts failed\n", failed, len(names))
		os.Exit(1)
	}
	fmt.Printf("%d scripts ok\n", len(names))
}
