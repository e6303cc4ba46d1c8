package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-genius/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Genius with the title menu",
	Long: `Start Genius in interactive menu mode.

Pick Play, High Scores or Quit. Left/Right changes the difficulty
before a game starts. During a game, B goes back to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select
  Q            - Quit

Examples:
  genius menu
  genius menu --fps 30
  genius menu --db ./scores.db`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		logger.Fatal("invalid game options", "err", err)
	}

	store := openStore()

	runErr := tui.RunSession(store, gameID, runtimeConfig(), playerName())

	if store != nil {
		store.Close() //nolint:errcheck
	}

	if runErr != nil {
		logger.Error("session stopped", "err", runErr)
		os.Exit(1)
	}
}
