package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shred/internal/core"
	"github.com/vovakirdan/tui-shred/internal/game/session"
	"github.com/vovakirdan/tui-shred/internal/platform/tui"
	"github.com/vovakirdan/tui-shred/internal/registry"
	"github.com/vovakirdan/tui-shred/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start shred with a mode and level picker",
	Long: `Start in interactive menu mode.

Pick a mode, then a level or the full campaign. After a run ends you
return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - Scoreboard
  Esc          - Back
  Q            - Quit

Examples:
  shred menu
  shred menu --fps 30
  shred menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}
	if store != nil {
		session.SetStore(store)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if menuResult.ModeID == "" {
			break
		}

		session.SetStartLevel(menuResult.LevelID)

		game, err := registry.Create(menuResult.ModeID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating mode: %v\n", err)
			continue
		}

		// Fresh seed for each run
		cfg.Seed = time.Now().UnixNano()

		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
