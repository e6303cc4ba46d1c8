package genius

import "github.com/vovakirdan/tui-genius/internal/config"

// Difficulty is the label shown for the current level.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
)

// DifficultyFor maps a level (the sequence length) to its label.
func DifficultyFor(level int, levels config.LevelConfig) Difficulty {
	switch {
	case level <= levels.EasyMax:
		return DifficultyEasy
	case level <= levels.MediumMax:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// String returns the short name of the difficulty.
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "easy"
	case DifficultyMedium:
		return "medium"
	case DifficultyHard:
		return "hard"
	default:
		return "unknown"
	}
}

// Label returns the sentence displayed under the title.
func (d Difficulty) Label() string {
	return "You are on the " + d.String() + " level!"
}
