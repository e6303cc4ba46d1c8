package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-genius/internal/platform/tui"
	"github.com/vovakirdan/tui-genius/internal/storage"
)

var (
	flagPlain  bool
	flagRecent bool
	flagLimit  int
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the Genius scoreboard. A score is the number of rounds
completed before the first wrong tap.

In a terminal the scoreboard is interactive (Tab switches between top and
recent games). With --plain, or when output is not a terminal, a text
table is printed instead.

Examples:
  genius scores
  genius scores --plain --limit 20
  genius scores --plain --recent
  genius scores --clear`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a text table instead of the interactive scoreboard")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List the most recent games instead of the best ones (plain mode)")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to print (plain mode)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
}

func runScores(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Fatal("could not open scores database", "path", flagDBPath, "err", err)
	}
	defer store.Close() //nolint:errcheck

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			logger.Error("could not clear scores", "err", err)
			os.Exit(1)
		}
		fmt.Println("All Genius scores deleted.")
		return
	}

	if !flagPlain && term.IsTerminal(int(os.Stdout.Fd())) {
		cfg := runtimeConfig()
		if err := tui.RunScoreboard(store, gameID, playerName(), cfg.ScreenW, cfg.ScreenH); err != nil {
			logger.Error("scoreboard stopped", "err", err)
			os.Exit(1)
		}
		return
	}

	if err := printScores(store); err != nil {
		logger.Error("could not read scores", "err", err)
		os.Exit(1)
	}
}

// printScores writes the plain text scoreboard to stdout.
func printScores(store *storage.Store) error {
	var (
		scores []storage.ScoreEntry
		err    error
		title  = "High Scores - Genius"
	)
	if flagRecent {
		title = "Recent Games - Genius"
		scores, err = store.RecentScores(gameID, flagLimit)
	} else {
		scores, err = store.TopScores(gameID, flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Println(title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'genius play' to set the first high score!")
		return nil
	}

	// Column width follows the longest player name
	nameLen := len("Player")
	for _, entry := range scores {
		if len(entry.Player) > nameLen {
			nameLen = len(entry.Player)
		}
	}

	fmt.Printf("  %-4s  %-*s  %-6s  %s\n", "Rank", nameLen, "Player", "Rounds", "Date")
	fmt.Printf("  %-4s  %-*s  %-6s  %s\n", "----", nameLen, "------", "------", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "-"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-*s  %-6d  %s\n", i+1, nameLen, player, entry.Score, dateStr)
	}

	fmt.Println()
	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("Games: %d  Players: %d  Best: %d  Average: %.1f\n",
		stats.GamesCount, stats.Players, stats.HighScore, stats.AvgScore)
	if best, err := store.PlayerBest(gameID, playerName()); err == nil && best > 0 {
		fmt.Printf("Your best: %d\n", best)
	}
	return nil
}
