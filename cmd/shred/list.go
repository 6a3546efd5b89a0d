package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shred/internal/game/leveldata"
	"github.com/vovakirdan/tui-shred/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available modes and levels",
	Long:  `Shows the registered modes and their campaign levels.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Println("No modes available.")
		return
	}

	fmt.Println("Available modes:")
	fmt.Println()

	for _, m := range modes {
		fmt.Printf("  %s - %s\n", m.ID, m.Title)
		for _, def := range leveldata.ByMode(m.ID) {
			timed := ""
			if def.TimeLimit > 0 {
				timed = fmt.Sprintf(", %ds", def.TimeLimit)
			}
			fmt.Printf("    %-10s %s (%s%s)\n", def.ID, def.Name, def.Difficulty, timed)
		}
		fmt.Println()
	}

	fmt.Println("Run 'shred play <mode>' to play, or add --level <id> for a specific level.")
}
