package genius

import "time"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Phase      Phase
	Level      int
	Rounds     int
	Best       int
	Sequence   Sequence
	Input      []int
	Active     [TileCount]bool
	Speed      time.Duration
	Message    string
	Confirming bool
	Paused     bool
}

// Snapshot returns the current game snapshot. Slices are copied.
func (g *Game) Snapshot() Snapshot {
	var input []int
	if len(g.input) > 0 {
		input = append(input, g.input...)
	}

	return Snapshot{
		Tick:       g.tick,
		Phase:      g.phase,
		Level:      g.level,
		Rounds:     g.rounds,
		Best:       g.best,
		Sequence:   g.sequence.Clone(),
		Input:      input,
		Active:     g.Active(),
		Speed:      g.speed,
		Message:    g.message,
		Confirming: g.confirming,
		Paused:     g.paused,
	}
}
