// genius is a Simon-style memory game for the terminal.
//
// Usage:
//
//	genius                 - Start the title menu (same as "genius menu")
//	genius play            - Play a game directly
//	genius menu            - Title menu with difficulty picker and high scores
//	genius serve           - Start SSH server for remote play
//	genius scores          - Show high scores
//	genius list            - List registered games
//	genius config          - Print the default configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 60)
//	--seed <value>   - Set RNG seed for reproducible sequences
//	--db <path>      - Set database path (default: ~/.genius/scores.db)
//	--player <name>  - Name stored with scores (default: $USER)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-genius/internal/games/genius"
)

const gameID = "genius"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagPlayer string
)

// logger reports problems that happen outside the alt screen.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "genius"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "genius",
	Short: "Genius - the color memory game in your terminal",
	Long: `Genius flashes a growing sequence of colored tiles. Repeat it by
tapping the tiles in the same order; every round adds one tile and plays
a little faster.

Available commands:
  play     - Play directly
  menu     - Title menu with difficulty picker and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores
  list     - Show registered games
  config   - Print the default configuration

Examples:
  genius
  genius play --difficulty hard
  genius serve --ssh :2222
  genius scores --plain`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.genius/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", "", "Player name stored with scores (default: $USER)")

	// Bare "genius" opens the menu
	rootCmd.Run = runMenu
	addGameFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// playerName resolves the name stored with local scores.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if user := os.Getenv("USER"); user != "" {
		return user
	}
	return "player"
}
