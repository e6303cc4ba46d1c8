package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-genius/internal/config"
	"github.com/vovakirdan/tui-genius/internal/core"
	"github.com/vovakirdan/tui-genius/internal/games/genius"
	"github.com/vovakirdan/tui-genius/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

// addGameFlags binds the flags shared by every command that starts a game.
func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameFlags validates --config and --difficulty and hands them to the
// game package before any game is created.
func applyGameFlags() error {
	if flagDifficulty != "" && config.ParseDifficultyPreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	if flagConfig != "" {
		// A broken explicit config would otherwise silently fall back to defaults
		if _, err := config.LoadGenius(flagConfig); err != nil {
			return err
		}
	}
	genius.SetConfigPath(flagConfig)
	genius.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the scores database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}
