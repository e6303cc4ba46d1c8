// Package config provides YAML-based game configuration loading and
// difficulty presets for the Genius game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// GeniusConfig contains all configuration for the Genius memory game.
type GeniusConfig struct {
	Timing TimingConfig `yaml:"timing"`
	Levels LevelConfig  `yaml:"levels"`
}

// TimingConfig defines playback speed and feedback delays in milliseconds.
type TimingConfig struct {
	InitialSpeedMS  int `yaml:"initial_speed_ms"`
	SpeedStepMS     int `yaml:"speed_step_ms"`
	MinSpeedMS      int `yaml:"min_speed_ms"`
	FeedbackDelayMS int `yaml:"feedback_delay_ms"`
	MessageHoldMS   int `yaml:"message_hold_ms"`
}

// LevelConfig defines the sequence-length thresholds for difficulty labels.
type LevelConfig struct {
	EasyMax   int `yaml:"easy_max"`
	MediumMax int `yaml:"medium_max"`
}

// InitialSpeed returns the per-tile duration at the start of a game.
func (t TimingConfig) InitialSpeed() time.Duration {
	return ms(t.InitialSpeedMS)
}

// SpeedStep returns the speed reduction applied after each round.
func (t TimingConfig) SpeedStep() time.Duration {
	return ms(t.SpeedStepMS)
}

// MinSpeed returns the speed floor.
func (t TimingConfig) MinSpeed() time.Duration {
	return ms(t.MinSpeedMS)
}

// FeedbackDelay returns the pause after a round is won or lost.
func (t TimingConfig) FeedbackDelay() time.Duration {
	return ms(t.FeedbackDelayMS)
}

// MessageHold returns how long a success message stays visible.
func (t TimingConfig) MessageHold() time.Duration {
	return ms(t.MessageHoldMS)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Validate reports every inconsistency in the configuration.
func (c GeniusConfig) Validate() error {
	var errs []error

	t := c.Timing
	if t.InitialSpeedMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.initial_speed_ms must be positive, got %d", t.InitialSpeedMS))
	}
	if t.MinSpeedMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.min_speed_ms must be positive, got %d", t.MinSpeedMS))
	}
	if t.MinSpeedMS > t.InitialSpeedMS {
		errs = append(errs, fmt.Errorf("timing.min_speed_ms (%d) exceeds initial_speed_ms (%d)", t.MinSpeedMS, t.InitialSpeedMS))
	}
	if t.SpeedStepMS < 0 {
		errs = append(errs, fmt.Errorf("timing.speed_step_ms must not be negative, got %d", t.SpeedStepMS))
	}
	if t.FeedbackDelayMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.feedback_delay_ms must be positive, got %d", t.FeedbackDelayMS))
	}
	if t.MessageHoldMS < t.FeedbackDelayMS {
		errs = append(errs, fmt.Errorf("timing.message_hold_ms (%d) is shorter than feedback_delay_ms (%d)", t.MessageHoldMS, t.FeedbackDelayMS))
	}

	l := c.Levels
	if l.EasyMax < 1 {
		errs = append(errs, fmt.Errorf("levels.easy_max must be at least 1, got %d", l.EasyMax))
	}
	if l.MediumMax <= l.EasyMax {
		errs = append(errs, fmt.Errorf("levels.medium_max (%d) must be greater than easy_max (%d)", l.MediumMax, l.EasyMax))
	}

	return errors.Join(errs...)
}
