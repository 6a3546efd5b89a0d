package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shred/internal/registry"
	"github.com/vovakirdan/tui-shred/internal/storage"
)

var flagRuns bool

var scoresCmd = &cobra.Command{
	Use:   "scores <mode>",
	Short: "Show high scores for a mode",
	Long: `Display the top 10 high scores for the specified mode.

Examples:
  shred scores skate
  shred scores surf
  shred scores skate --runs`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagRuns, "runs", false, "Show recent level runs instead of high scores")
}

func runScores(cmd *cobra.Command, args []string) {
	modeID := args[0]

	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'shred list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagRuns {
		printRuns(store, modeID, title)
		return
	}

	scores, err := store.TopScores(modeID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'shred play %s' to set the first high score!\n", modeID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if highScore, err := store.HighScore(modeID); err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}

func printRuns(store *storage.Store, modeID, title string) {
	runs, err := store.RecentRuns(50)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Recent Runs - %s\n", title)
	fmt.Println()

	shown := 0
	for _, r := range runs {
		if r.Mode != modeID {
			continue
		}
		if shown == 0 {
			fmt.Printf("  %-10s  %-10s  %-6s  %-5s  %s\n", "Level", "Score", "Combo", "Done", "Date")
			fmt.Printf("  %-10s  %-10s  %-6s  %-5s  %s\n", "-----", "-----", "-----", "----", "----")
		}
		done := "-"
		if r.Completed {
			done = "yes"
		}
		fmt.Printf("  %-10s  %-10d  %-6d  %-5s  %s\n",
			r.LevelID, r.Score, r.MaxCombo, done, r.CreatedAt.Format("2006-01-02 15:04"))
		shown++
		if shown >= 10 {
			break
		}
	}

	if shown == 0 {
		fmt.Println("No runs recorded yet.")
	}
}
