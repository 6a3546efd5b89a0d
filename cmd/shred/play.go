package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shred/internal/core"
	"github.com/vovakirdan/tui-shred/internal/game/session"
	"github.com/vovakirdan/tui-shred/internal/platform/tui"
	"github.com/vovakirdan/tui-shred/internal/registry"
	"github.com/vovakirdan/tui-shred/internal/storage"
)

var (
	flagConfig     string
	flagLevel      string
	flagLevelsDir  string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Play a mode",
	Long: `Start playing the specified mode (skate or surf).

Controls:
  A/D, Left/Right - Move
  Space           - Jump
  J/K/L (1/2/3)   - Tricks
  W/S, Up/Down    - Trick modifiers (surf combos, ollie)
  P               - Pause
  R               - Restart level
  Q/Ctrl+C        - Quit

Examples:
  shred play skate
  shred play surf --level surf-2
  shred play skate --difficulty high
  shred play skate --config ./my-skate.yaml
  shred play surf --levels ./my-levels/`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level ID to start from")
	playCmd.Flags().StringVar(&flagLevelsDir, "levels", "", "Directory of custom level YAML files")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: low, medium, high")
}

// terminalSize returns the current terminal dimensions, with defaults for
// non-terminal stdout.
func terminalSize() (int, int) {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'shred list' to see available modes.")
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	session.SetConfigPath(flagConfig)
	session.SetLevelsDir(flagLevelsDir)
	session.SetStartLevel(flagLevel)
	session.SetDifficulty(flagDifficulty)

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		session.SetStore(store)
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
