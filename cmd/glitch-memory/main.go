// glitch-memory is a memory-matching card game for the terminal.
//
// Usage:
//
//	glitch-memory play            - Play (resumes the saved game if any)
//	glitch-memory menu            - Start menu with presets and scores
//	glitch-memory scores          - Show high scores
//	glitch-memory reset           - Delete the saved game
//	glitch-memory serve           - Start SSH server for remote play
//	glitch-memory list            - List available games
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 60)
//	--seed <value>      - Set RNG seed for reproducible boards
//	--db <path>         - Set database path (default: ~/.glitch-memory/glitch-memory.db)
//	--config <path>     - Use a custom memory.yaml
//	--profile <name>    - Save slot and score owner
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iamraziq/glitch-memory/internal/games/memory"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagProfile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "glitch-memory",
	Short: "Glitch Memory - find the pairs in your terminal",
	Long: `Glitch Memory is a memory-matching card game for the terminal.
Cards are shown briefly, then hidden. Flip two at a time and find
every pair. Progress is saved after every flip.

Available commands:
  play     - Play directly
  menu     - Interactive menu with presets and scores
  scores   - View high scores
  reset    - Delete the saved game
  serve    - Start SSH server for remote play
  list     - Show available games

Examples:
  glitch-memory play
  glitch-memory play --difficulty hard
  glitch-memory menu
  glitch-memory serve --ssh :2222
  glitch-memory scores --profile alice`,
	SilenceUsage: true,

	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if flagFPS <= 0 {
			return fmt.Errorf("--fps must be positive, got %d", flagFPS)
		}
		memory.SetConfigPath(flagConfig)
		return nil
	},
}

// needsConfig is the PreRunE of commands that start games.
func needsConfig(_ *cobra.Command, _ []string) error {
	return checkConfig()
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.glitch-memory/glitch-memory.db", "Path to the database with scores and saves")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom memory.yaml")
	rootCmd.PersistentFlags().StringVar(&flagProfile, "profile", "", "Profile name for the save slot and scores")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(resetCmd)
}
