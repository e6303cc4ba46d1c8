package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-genius/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in genius.yaml. Save it to
~/.genius/configs/genius.yaml or ./configs/genius.yaml to change the
timing and difficulty thresholds, or pass it with --config.

Examples:
  genius config > ~/.genius/configs/genius.yaml
  genius config --check ./my-genius.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

var flagCheck string

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file instead of printing the default")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagCheck != "" {
		cfg, err := config.LoadGenius(flagCheck)
		if err != nil {
			logger.Error("invalid config", "err", err)
			os.Exit(1)
		}
		fmt.Printf("%s is valid: start %v, step %v, floor %v\n",
			flagCheck, cfg.Timing.InitialSpeed(), cfg.Timing.SpeedStep(), cfg.Timing.MinSpeed())
		return
	}
	os.Stdout.Write(config.GetDefaultYAML(gameID)) //nolint:errcheck
}
