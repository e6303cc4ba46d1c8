package genius

// Playback flashes a sequence one tile at a time.
// For every element the tile is lit for stepTicks, then unlit for stepTicks.
// The gap keeps repeated tiles distinguishable.
type Playback struct {
	seq       Sequence
	index     int
	lit       bool
	ticksLeft int
	stepTicks int
	active    [TileCount]bool
	running   bool
}

// NewPlayback creates a playback that lights the first tile immediately.
func NewPlayback(seq Sequence, stepTicks int) Playback {
	p := Playback{
		seq:       seq,
		stepTicks: max(stepTicks, 1),
	}
	if len(seq) == 0 {
		return p
	}
	p.running = true
	p.light()
	return p
}

// light turns on the tile at the current index.
func (p *Playback) light() {
	p.lit = true
	p.active[p.seq[p.index]] = true
	p.ticksLeft = p.stepTicks
}

// Advance moves the playback forward by one tick.
// Returns true while the playback is still running.
func (p *Playback) Advance() bool {
	if !p.running {
		return false
	}

	p.ticksLeft--
	if p.ticksLeft > 0 {
		return true
	}

	if p.lit {
		p.lit = false
		p.active[p.seq[p.index]] = false
		p.ticksLeft = p.stepTicks
		return true
	}

	p.index++
	if p.index >= len(p.seq) {
		p.running = false
		return false
	}
	p.light()
	return true
}

// Running reports whether tiles are still being flashed.
func (p *Playback) Running() bool {
	return p.running
}

// Active returns the lit flag of every tile.
func (p *Playback) Active() [TileCount]bool {
	return p.active
}

// Position returns the index of the element being shown.
func (p *Playback) Position() int {
	return p.index
}

// TotalTicks returns how many ticks a full playback of n elements takes.
func TotalTicks(n, stepTicks int) int {
	return 2 * n * max(stepTicks, 1)
}
