// Package genius implements the Genius memory game (known elsewhere as Simon).
// The game flashes a growing sequence of tiles on a 3x3 board and the player
// reproduces it tile by tile. Each completed round adds a tile and speeds
// the playback up.
package genius

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-genius/internal/config"
	"github.com/vovakirdan/tui-genius/internal/core"
	"github.com/vovakirdan/tui-genius/internal/registry"
)

// Phase is the stage of the round the game is in.
type Phase string

const (
	PhaseIdle     Phase = "idle"     // Waiting for the player to start
	PhasePlayback Phase = "playback" // Flashing the sequence, taps ignored
	PhaseInput    Phase = "input"    // Accepting taps
	PhaseAdvance  Phase = "advance"  // Round won, waiting before the next one
	PhaseFailed   Phase = "failed"   // Wrong tap, waiting before restarting
)

// Feedback messages.
const (
	msgCorrectFaster = "Correct! The speed is going up!"
	msgCorrect       = "Correct! Get ready for the next round!"
	msgWrong         = "Wrong! The game will restart."
)

// Game implements the Genius memory game.
type Game struct {
	base       config.GeniusConfig // As loaded, before the preset
	cfg        config.GeniusConfig
	preset     config.DifficultyPreset
	schedule   config.SpeedSchedule
	configured bool // base was resolved, Reset must not reload it
	rng        *rand.Rand
	tickRate   int
	tick       uint64

	phase    Phase
	sequence Sequence
	input    []int
	playback Playback
	speed    time.Duration
	level    int
	rounds   int // Rounds completed in the current game
	best     int // Best round count since the game was created

	message      string
	messageTicks int // Ticks until the message clears, 0 keeps it
	phaseTicks   int // Ticks left in the advance/failed phases

	confirming bool // Restart prompt is open
	paused     bool

	screenW  int
	screenH  int
	tooSmall bool
	layout   boardLayout
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets a custom config file path for the next game created.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the default preset for games created afterwards.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParseDifficultyPreset(preset)
}

// New creates a new Genius game using the configured path and preset.
func New() *Game {
	return &Game{base: config.DefaultGeniusConfig(), preset: difficultyPreset}
}

// NewWithConfig creates a game with an explicit configuration,
// bypassing the config search path.
func NewWithConfig(cfg config.GeniusConfig) *Game {
	return &Game{base: cfg, cfg: cfg, configured: true}
}

func init() {
	registry.Register("genius", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "genius"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Genius"
}

// Reset initializes the game. The board waits for the player to start.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if !g.configured {
		g.loadConfig()
	}
	g.cfg = g.base
	if g.preset != "" {
		config.ApplyGeniusPreset(&g.cfg, g.preset)
	}
	g.schedule = config.NewSpeedSchedule(g.cfg.Timing)

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = core.DefaultConfig().TickRate
	}
	g.tick = 0

	g.phase = PhaseIdle
	g.sequence = nil
	g.input = nil
	g.playback = Playback{}
	g.speed = g.schedule.Initial()
	g.level = 1
	g.rounds = 0
	g.message = ""
	g.messageTicks = 0
	g.phaseTicks = 0
	g.confirming = false
	g.paused = false

	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// loadConfig resolves the configuration from disk.
func (g *Game) loadConfig() {
	cfg, err := config.LoadGenius(configPath)
	if err != nil {
		cfg = config.DefaultGeniusConfig()
	}
	g.base = cfg
	g.configured = true
}

// Presets lists the difficulty presets a player can choose from.
func (g *Game) Presets() []string {
	return []string{
		string(config.DifficultyEasy),
		string(config.DifficultyNormal),
		string(config.DifficultyHard),
		string(config.DifficultyFixed),
	}
}

// SetPreset selects the difficulty preset of this game.
// It takes effect on the next Reset; unknown names keep the loaded config.
func (g *Game) SetPreset(name string) {
	g.preset = config.ParseDifficultyPreset(name)
}

// Preset returns the selected difficulty preset, empty when none is set.
func (g *Game) Preset() string {
	return string(g.preset)
}

// Resize adapts the board to new screen dimensions without touching the round.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.layout = computeLayout(width, height)
	g.tooSmall = !g.layout.fits
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// The restart prompt freezes everything else
	if g.confirming {
		switch {
		case in.Has(core.ActionConfirm):
			g.confirming = false
			g.Start()
		case in.Has(core.ActionBack):
			g.confirming = false
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.confirming = true
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && g.phase != PhaseIdle {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.phase == PhaseIdle {
		if in.Has(core.ActionConfirm) {
			g.Start()
		}
		return core.StepResult{State: g.State()}
	}

	g.tickMessage()

	switch g.phase {
	case PhasePlayback:
		if !g.playback.Advance() {
			g.phase = PhaseInput
		}

	case PhaseInput:
		for _, tile := range in.Taps {
			g.Tap(tile)
			if g.phase != PhaseInput {
				break
			}
		}

	case PhaseAdvance:
		g.phaseTicks--
		if g.phaseTicks <= 0 {
			g.nextRound()
		}

	case PhaseFailed:
		g.phaseTicks--
		if g.phaseTicks <= 0 {
			g.Start()
		}
	}

	return core.StepResult{State: g.State()}
}

// Start begins a new game: one random tile, initial speed, playback running.
func (g *Game) Start() {
	g.level = 1
	g.rounds = 0
	g.sequence = NewSequence(g.rng)
	g.input = nil
	g.message = ""
	g.messageTicks = 0
	g.phaseTicks = 0
	g.paused = false
	g.speed = g.schedule.Initial()
	g.beginPlayback()
}

// beginPlayback starts flashing the current sequence.
func (g *Game) beginPlayback() {
	g.playback = NewPlayback(g.sequence, core.Ticks(g.speed, g.tickRate))
	g.phase = PhasePlayback
}

// Tap registers a tile selection. It is ignored unless the player's turn is on.
// Returns the verdict for the input so far.
func (g *Game) Tap(tile int) Verdict {
	if g.phase != PhaseInput || g.paused || g.confirming {
		return VerdictPending
	}
	if tile < 0 || tile >= TileCount {
		return VerdictPending
	}

	g.input = append(g.input, tile)
	verdict := g.sequence.Check(g.input)
	switch verdict {
	case VerdictWrong:
		g.fail()
	case VerdictComplete:
		g.roundWon()
	}
	return verdict
}

// roundWon congratulates the player and schedules the next round.
func (g *Game) roundWon() {
	g.rounds++
	g.best = max(g.best, g.rounds)
	g.phase = PhaseAdvance
	g.phaseTicks = core.Ticks(g.cfg.Timing.FeedbackDelay(), g.tickRate)

	g.message = msgCorrect
	if g.schedule.Next(g.speed) < g.speed {
		g.message = msgCorrectFaster
	}
	g.messageTicks = core.Ticks(g.cfg.Timing.MessageHold(), g.tickRate)
}

// nextRound grows the sequence, speeds up and replays.
func (g *Game) nextRound() {
	g.sequence = g.sequence.Extend(g.rng)
	g.level = len(g.sequence)
	g.input = nil
	g.speed = g.schedule.Next(g.speed)
	g.beginPlayback()
}

// fail reports the wrong tap and schedules a restart.
func (g *Game) fail() {
	g.phase = PhaseFailed
	g.phaseTicks = core.Ticks(g.cfg.Timing.FeedbackDelay(), g.tickRate)
	g.message = msgWrong
	g.messageTicks = 0
}

// tickMessage clears a timed message once it expires.
func (g *Game) tickMessage() {
	if g.messageTicks == 0 {
		return
	}
	g.messageTicks--
	if g.messageTicks == 0 {
		g.message = ""
	}
}

// Active returns which tiles are lit right now.
func (g *Game) Active() [TileCount]bool {
	if g.phase != PhasePlayback {
		return [TileCount]bool{}
	}
	return g.playback.Active()
}

// Difficulty returns the label for the current level.
func (g *Game) Difficulty() Difficulty {
	return DifficultyFor(g.level, g.cfg.Levels)
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Speed returns the current per-tile playback duration.
func (g *Game) Speed() time.Duration {
	return g.speed
}

// State returns the current game state.
// GameOver is reported while the failure message is shown, before the restart.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.rounds,
		GameOver: g.phase == PhaseFailed,
		Paused:   g.paused || g.tooSmall || g.confirming,
	}
}
