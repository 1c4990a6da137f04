package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iamraziq/glitch-memory/internal/config"
	"github.com/iamraziq/glitch-memory/internal/games/memory"
	"github.com/iamraziq/glitch-memory/internal/platform/tui"
	"github.com/iamraziq/glitch-memory/internal/registry"
)

var (
	flagDifficulty string
	flagNew        bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play the memory game",
	Long: `Start playing. A saved game for the profile is resumed unless
--new or --difficulty is given.

Controls:
  Arrows/WASD/HJKL - Move the cursor
  Space/Enter      - Flip the card under the cursor
  P                - Pause
  R                - New board
  B/Esc            - Leave (the game stays saved)
  Q/Ctrl+C         - Quit
  Ctrl+S           - Screenshot to ~/.glitch-memory/screenshots

Difficulty options:
  easy   - 2x4 board, 3s preview
  normal - 4x4 board, 2s preview
  hard   - 6x6 board, 1.5s preview

Examples:
  glitch-memory play
  glitch-memory play --difficulty easy
  glitch-memory play --new --seed 42
  glitch-memory play --config ./my-memory.yaml`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: needsConfig,
	Run:     runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Discard the saved game and start a new board")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := memory.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'glitch-memory list' to see available games.")
		os.Exit(1)
	}

	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		p, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		preset = p
	}
	memory.SetDifficultyPreset(preset)

	logger, closeLog, err := fileLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store := openStore()
	if store != nil {
		defer store.Close()

		if flagNew || preset != "" {
			if err := memory.ClearSave(store, flagProfile); err != nil {
				logger.Warn("could not discard saved game", "error", err)
			}
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger.Info("starting", "game", gameID, "profile", flagProfile, "difficulty", preset)
	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
