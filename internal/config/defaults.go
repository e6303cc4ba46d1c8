package config

import (
	_ "embed"
)

//go:embed defaults/genius.yaml
var defaultGeniusYAML []byte

// DefaultGeniusConfig returns the default Genius configuration.
func DefaultGeniusConfig() GeniusConfig {
	return GeniusConfig{
		Timing: TimingConfig{
			InitialSpeedMS:  1000,
			SpeedStepMS:     100,
			MinSpeedMS:      200,
			FeedbackDelayMS: 1500,
			MessageHoldMS:   2000,
		},
		Levels: LevelConfig{
			EasyMax:   3,
			MediumMax: 6,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "genius":
		return defaultGeniusYAML
	default:
		return nil
	}
}
