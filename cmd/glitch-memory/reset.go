package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iamraziq/glitch-memory/internal/games/memory"
	"github.com/iamraziq/glitch-memory/internal/storage"
)

var (
	flagResetScores      bool
	flagResetAllProfiles bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the saved game",
	Long: `Delete the saved game of --profile, so the next game starts fresh.
With --all-profiles the saved games of every profile are deleted, which
includes all SSH users. With --scores the high score table is cleared as well.

Examples:
  glitch-memory reset
  glitch-memory reset --profile alice
  glitch-memory reset --all-profiles
  glitch-memory reset --scores`,
	Args: cobra.NoArgs,
	Run:  runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&flagResetScores, "scores", false, "Also clear all high scores")
	resetCmd.Flags().BoolVar(&flagResetAllProfiles, "all-profiles", false, "Delete the saved games of every profile")
}

func runReset(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagResetAllProfiles:
		n, err := memory.ClearAllSaves(store)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting saved games: %v\n", err)
			return
		}
		fmt.Printf("%d saved game(s) deleted.\n", n)
	case !memory.HasSave(store, flagProfile):
		fmt.Println("No saved game.")
	default:
		if err := memory.ClearSave(store, flagProfile); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting saved game: %v\n", err)
			return
		}
		fmt.Println("Saved game deleted.")
	}

	if flagResetScores {
		if err := store.ClearScores(memory.ID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Println("High scores cleared.")
	}
}
