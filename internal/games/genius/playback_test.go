package genius

import "testing"

// litTile returns the single lit tile, or -1 when none or several are lit.
func litTile(active [TileCount]bool) int {
	lit := -1
	for i, on := range active {
		if !on {
			continue
		}
		if lit >= 0 {
			return -1
		}
		lit = i
	}
	return lit
}

func TestPlaybackTimeline(t *testing.T) {
	seq := Sequence{2, 6}
	p := NewPlayback(seq, 3)

	// Record which tile is lit at every tick, starting with the initial frame
	timeline := []int{litTile(p.Active())}
	for p.Advance() {
		timeline = append(timeline, litTile(p.Active()))
	}

	// Lit for three ticks, then dark for three, per element
	expected := []int{2, 2, 2, -1, -1, -1, 6, 6, 6, -1, -1, -1}
	if len(timeline) != len(expected) {
		t.Fatalf("timeline = %v, want %v", timeline, expected)
	}
	for i := range expected {
		if timeline[i] != expected[i] {
			t.Fatalf("timeline = %v, want %v", timeline, expected)
		}
	}

	if p.Running() {
		t.Error("playback should stop after the last element")
	}
	if litTile(p.Active()) != -1 {
		t.Error("no tile should stay lit after playback")
	}
}

func TestPlaybackRepeatedTileHasGap(t *testing.T) {
	p := NewPlayback(Sequence{5, 5}, 1)

	var states []bool
	states = append(states, p.Active()[5])
	for p.Advance() {
		states = append(states, p.Active()[5])
	}

	expected := []bool{true, false, true, false}
	if len(states) != len(expected) {
		t.Fatalf("states = %v, want %v", states, expected)
	}
	for i := range expected {
		if states[i] != expected[i] {
			t.Fatalf("states = %v, want %v", states, expected)
		}
	}
}

func TestPlaybackTotalTicks(t *testing.T) {
	for n := 1; n <= 5; n++ {
		seq := make(Sequence, n)
		p := NewPlayback(seq, 4)

		calls := 0
		for {
			calls++
			if !p.Advance() {
				break
			}
		}
		if calls != TotalTicks(n, 4) {
			t.Errorf("n=%d: Advance called %d times, want %d", n, calls, TotalTicks(n, 4))
		}
	}
}

func TestPlaybackEmptyAndZeroStep(t *testing.T) {
	empty := NewPlayback(nil, 5)
	if empty.Running() || empty.Advance() {
		t.Error("empty playback should not run")
	}

	// A zero step is treated as one tick
	p := NewPlayback(Sequence{0}, 0)
	if !p.Running() || !p.Active()[0] {
		t.Fatal("playback should light the first tile")
	}
	if !p.Advance() {
		t.Error("tile should turn off on the first advance")
	}
	if p.Advance() {
		t.Error("playback should finish on the second advance")
	}
}
