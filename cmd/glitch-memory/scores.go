package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iamraziq/glitch-memory/internal/games/memory"
	"github.com/iamraziq/glitch-memory/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresMine  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores. Ties are ranked by fewer moves.

Examples:
  glitch-memory scores
  glitch-memory scores --limit 25
  glitch-memory scores --mine --profile alice`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresMine, "mine", false, "Only show scores of --profile")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	var scores []storage.ScoreEntry
	if flagScoresMine {
		scores, err = store.ProfileTopScores(memory.ID, flagProfile, flagScoresLimit)
	} else {
		scores, err = store.TopScores(memory.ID, flagScoresLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Println("High Scores - Glitch Memory")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'glitch-memory play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-12s  %s\n", "Rank", "Score", "Board", "Moves", "Player", "Date")
	fmt.Printf("  %-4s  %-6s  %-5s  %-5s  %-12s  %s\n", "----", "-----", "-----", "-----", "------", "----")
	for i, e := range scores {
		player := e.Profile
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-6d  %-5s  %-5d  %-12s  %s\n",
			i+1, e.Score, e.Board(), e.Moves, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(memory.ID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Best: %d  Boards: %d  Average: %.1f  Fewest moves: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.BestMoves)
	}
}
