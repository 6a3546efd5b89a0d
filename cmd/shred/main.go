// shred is a terminal skate-and-surf arcade game.
//
// Usage:
//
//	shred list               - List available modes
//	shred play <mode>        - Play a mode (skate, surf)
//	shred menu               - Interactive mode and level picker
//	shred serve              - Start SSH server for remote play
//	shred scores <mode>      - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible levels
//	--db <path>     - Set database path (default: ~/.shred/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import session to register the modes
	_ "github.com/vovakirdan/tui-shred/internal/game/session"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shred",
	Short: "Shred - skate and surf in your terminal",
	Long: `Shred is a terminal side-scroller about landing tricks, chaining
combos and clearing level objectives on a board, wheels or waves.

Available commands:
  list     - Show available modes
  play     - Play a mode directly
  menu     - Interactive mode and level picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  shred list
  shred play skate
  shred play surf --level surf-2
  shred menu
  shred serve --ssh :2222
  shred scores skate`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.shred/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
