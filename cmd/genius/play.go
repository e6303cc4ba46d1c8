package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-genius/internal/platform/tui"
	"github.com/vovakirdan/tui-genius/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Genius",
	Long: `Start a game right away, without the title menu.

Controls:
  Enter/Space  - Start
  1-9 / mouse  - Tap a tile
  R            - Restart (asks for confirmation)
  P            - Pause
  Ctrl+S       - Save a screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start slow (1000 ms per flash), speed up every round
  normal - Start at 800 ms per flash
  hard   - Start at 500 ms per flash
  fixed  - Never speed up

Examples:
  genius play
  genius play --difficulty hard
  genius play --seed 42
  genius play --config ./my-genius.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := applyGameFlags(); err != nil {
		logger.Fatal("invalid game options", "err", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Fatal("could not create game", "err", err)
	}

	store := openStore()

	runErr := tui.Run(game, store, runtimeConfig(), playerName())

	// Close store before potential exit
	if store != nil {
		store.Close() //nolint:errcheck
	}

	if runErr != nil {
		logger.Error("game stopped", "err", runErr)
		os.Exit(1)
	}
}
