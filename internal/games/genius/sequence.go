package genius

import "math/rand"

// TileCount is the number of tappable tiles on the board.
const TileCount = 9

// Sequence is the ordered list of tile indices the player must reproduce.
// Every element is in [0, TileCount).
type Sequence []int

// Verdict is the outcome of comparing the player's taps to a sequence.
type Verdict int

const (
	// VerdictPending means every tap so far matches and more are expected.
	VerdictPending Verdict = iota
	// VerdictComplete means the taps reproduce the whole sequence.
	VerdictComplete
	// VerdictWrong means a tap diverged from the sequence.
	VerdictWrong
)

// String returns a human-readable name for the verdict.
func (v Verdict) String() string {
	switch v {
	case VerdictPending:
		return "pending"
	case VerdictComplete:
		return "complete"
	case VerdictWrong:
		return "wrong"
	default:
		return "unknown"
	}
}

// NewSequence starts a game with a single random tile.
func NewSequence(rng *rand.Rand) Sequence {
	return Sequence{rng.Intn(TileCount)}
}

// Extend returns a copy of the sequence with one random tile appended.
// The receiver is never modified, so snapshots taken earlier stay valid.
func (s Sequence) Extend(rng *rand.Rand) Sequence {
	next := make(Sequence, len(s), len(s)+1)
	copy(next, s)
	return append(next, rng.Intn(TileCount))
}

// Check compares taps positionally against the sequence prefix of the same length.
func (s Sequence) Check(taps []int) Verdict {
	if len(taps) > len(s) {
		return VerdictWrong
	}
	for i, tile := range taps {
		if s[i] != tile {
			return VerdictWrong
		}
	}
	if len(taps) == len(s) {
		return VerdictComplete
	}
	return VerdictPending
}

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	return append(Sequence(nil), s...)
}
