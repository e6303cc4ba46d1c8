package config

import "time"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset maps a CLI value to a preset.
// Unknown or empty values return "" which keeps the config as loaded.
func ParseDifficultyPreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialSpeedForPreset returns the starting speed in milliseconds for a preset.
// Returns 0 for presets that keep the configured value.
func InitialSpeedForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1000
	case DifficultyNormal:
		return 800
	case DifficultyHard:
		return 500
	default:
		return 0
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyGeniusPreset modifies the config based on a difficulty preset.
func ApplyGeniusPreset(cfg *GeniusConfig, preset DifficultyPreset) {
	if IsFixedPreset(preset) {
		cfg.Timing.SpeedStepMS = 0
		return
	}
	if speed := InitialSpeedForPreset(preset); speed > 0 {
		cfg.Timing.InitialSpeedMS = speed
		if cfg.Timing.MinSpeedMS > speed {
			cfg.Timing.MinSpeedMS = speed
		}
	}
}

// SpeedSchedule computes the round speed as the game progresses.
type SpeedSchedule struct {
	initial time.Duration
	step    time.Duration
	floor   time.Duration
}

// NewSpeedSchedule creates a schedule from timing configuration.
func NewSpeedSchedule(t TimingConfig) SpeedSchedule {
	return SpeedSchedule{
		initial: t.InitialSpeed(),
		step:    t.SpeedStep(),
		floor:   t.MinSpeed(),
	}
}

// Initial returns the speed used by a fresh game.
func (s SpeedSchedule) Initial() time.Duration {
	return s.initial
}

// Next returns the speed after one more completed round, never below the floor.
func (s SpeedSchedule) Next(current time.Duration) time.Duration {
	return max(s.floor, current-s.step)
}

// At returns the speed after the given number of completed rounds.
func (s SpeedSchedule) At(rounds int) time.Duration {
	speed := s.initial
	for i := 0; i < rounds; i++ {
		next := s.Next(speed)
		if next == speed {
			break
		}
		speed = next
	}
	return speed
}
