package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iamraziq/glitch-memory/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a menu of presets and scores",
	Long: `Start in interactive menu mode.

Pick Continue to resume the saved game, or a preset for a new board.
Leaving a game with B/Esc returns to the menu; the game stays saved.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Q            - Quit

Examples:
  glitch-memory menu
  glitch-memory menu --fps 30
  glitch-memory menu --profile alice`,
	PreRunE: needsConfig,
	Run:     runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	logger, closeLog, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := runtimeConfig()
	var lastRunID string

	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config

		switch res.Choice {
		case tui.ChoiceScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.Profile, lastRunID, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return

		case tui.ChoiceContinue, tui.ChoiceNewGame:
			game, err := tui.StartGame(res, store)
			if err != nil {
				logger.Error("cannot start game", "error", err)
				continue
			}

			if flagSeed == 0 {
				cfg.Seed = time.Now().UnixNano()
			}
			run, err := tui.Run(game, store, cfg, logger)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
				return
			}
			if run.LastRunID != "" {
				lastRunID = run.LastRunID
			}
			if !run.BackToMenu {
				return
			}

		default:
			return
		}
	}
}
