package tui

import (
	"fmt"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-genius/internal/config"
	"github.com/vovakirdan/tui-genius/internal/core"
	"github.com/vovakirdan/tui-genius/internal/games/genius"
	"github.com/vovakirdan/tui-genius/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) (GameModel, *genius.Game) {
	t.Helper()
	game := genius.NewWithConfig(config.DefaultGeniusConfig())
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 10, Seed: 99}
	m := NewGameModel(game, store, cfg, "tester")
	m.Init()
	return m, game
}

func send(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm, cmd
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	m, _ = send(t, m, TickMsg{id: m.tickID})
	return m
}

// tickUntil ticks until the game reaches the phase.
func tickUntil(t *testing.T, m GameModel, game *genius.Game, phase genius.Phase) GameModel {
	t.Helper()
	for rep := 0; rep < 2000; rep++ {
		if game.Phase() == phase {
			return m
		}
		m = tick(t, m)
	}
	t.Fatalf("game never reached phase %s", phase)
	return m
}

func tileKey(tile int) tea.KeyMsg {
	return keyMsg(fmt.Sprint(tile + 1))
}

func TestGameModelReservesHelpRow(t *testing.T) {
	m, _ := newTestModel(t, nil)

	if m.config.ScreenH != 24 {
		t.Errorf("game height = %d, want 24", m.config.ScreenH)
	}
	if m.screen.Height() != 24 {
		t.Errorf("screen height = %d, want 24", m.screen.Height())
	}
}

func TestGameModelPlaysRound(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)
	if game.Phase() != genius.PhasePlayback {
		t.Fatalf("phase = %s, want playback", game.Phase())
	}

	m = tickUntil(t, m, game, genius.PhaseInput)
	m, _ = send(t, m, tileKey(game.Snapshot().Sequence[0]))
	m = tick(t, m)

	if game.Phase() != genius.PhaseAdvance {
		t.Errorf("phase = %s, want advance", game.Phase())
	}
	if len(m.inputFrame.Taps) != 0 {
		t.Error("input frame should be cleared after a tick")
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m, game := newTestModel(t, nil)
	before := game.Snapshot().Tick

	m, cmd := send(t, m, TickMsg{id: m.tickID + 1})
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if game.Snapshot().Tick != before {
		t.Error("stale tick should not step the game")
	}

	_, cmd = send(t, m, TickMsg{id: m.tickID})
	if cmd == nil {
		t.Error("tick should schedule the next one")
	}
	if game.Snapshot().Tick != before+1 {
		t.Error("tick should step the game")
	}
}

func TestGameModelMouseTap(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)
	m = tickUntil(t, m, game, genius.PhaseInput)

	target := game.Snapshot().Sequence[0]
	x, y := -1, -1
	for cy := 0; cy < 24 && x < 0; cy++ {
		for cx := 0; cx < 80; cx++ {
			if tile, ok := game.TileAt(cx, cy); ok && tile == target {
				x, y = cx, cy
				break
			}
		}
	}
	if x < 0 {
		t.Fatalf("tile %d not found on screen", target)
	}

	// Releases and other buttons are ignored
	m, _ = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	if len(m.inputFrame.Taps) != 0 {
		t.Fatalf("only left presses should tap, got %v", m.inputFrame.Taps)
	}

	m, _ = send(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	tick(t, m)

	if game.Phase() != genius.PhaseAdvance {
		t.Errorf("phase = %s, want advance after clicking the right tile", game.Phase())
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	m, game := newTestModel(t, nil)

	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)
	seq := game.Snapshot().Sequence

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.config.ScreenW != 120 || m.config.ScreenH != 39 {
		t.Errorf("config = %dx%d, want 120x39", m.config.ScreenW, m.config.ScreenH)
	}
	if game.Phase() != genius.PhasePlayback {
		t.Errorf("resize should not reset the game, phase = %s", game.Phase())
	}
	if got := game.Snapshot().Sequence; len(got) != len(seq) || got[0] != seq[0] {
		t.Errorf("sequence changed on resize: %v -> %v", seq, got)
	}
}

func TestGameModelSavesScoreOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, game := newTestModel(t, store)
	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)

	// Win one round
	m = tickUntil(t, m, game, genius.PhaseInput)
	m, _ = send(t, m, tileKey(game.Snapshot().Sequence[0]))
	m = tick(t, m)

	// Then fail the second one
	m = tickUntil(t, m, game, genius.PhaseInput)
	first := game.Snapshot().Sequence[0]
	m, _ = send(t, m, tileKey((first+1)%genius.TileCount))
	m = tick(t, m)
	if !m.State().GameOver {
		t.Fatal("expected game over after a wrong tap")
	}

	// Keep ticking through the failure delay and into the next game
	for rep := 0; rep < 50; rep++ {
		m = tick(t, m)
	}
	if game.Phase() == genius.PhaseFailed {
		t.Fatal("game should have restarted")
	}

	scores, err := store.TopScores("genius", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved score, got %d", len(scores))
	}
	if scores[0].Score != 1 || scores[0].Player != "tester" {
		t.Errorf("saved %+v, want score 1 by tester", scores[0])
	}
	if m.scoreSaved {
		t.Error("save flag should reset once the game runs again")
	}
}

func TestGameModelZeroScoreNotSaved(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m, game := newTestModel(t, store)
	m, _ = send(t, m, keyMsg("enter"))
	m = tick(t, m)
	m = tickUntil(t, m, game, genius.PhaseInput)

	first := game.Snapshot().Sequence[0]
	m, _ = send(t, m, tileKey((first+1)%genius.TileCount))
	tick(t, m)

	high, _ := store.HighScore("genius")
	if high != 0 {
		t.Errorf("a game without completed rounds should not be saved, got %d", high)
	}
}

func TestGameModelQuitAndBack(t *testing.T) {
	m, _ := newTestModel(t, nil)

	// Back is disabled for direct play
	m, cmd := send(t, m, keyMsg("b"))
	if m.BackToMenu() || cmd != nil {
		t.Error("b should do nothing outside a session")
	}

	m.enableBack()
	m, cmd = send(t, m, keyMsg("b"))
	if !m.BackToMenu() || cmd == nil {
		t.Error("b should request the menu once enabled")
	}

	m, cmd = send(t, m, keyMsg("q"))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestGameModelView(t *testing.T) {
	m, _ := newTestModel(t, nil)

	view := m.View()
	for _, want := range []string{"G E N I U S", "Press Enter to start", "tap tile"} {
		if !containsPlain(view, want) {
			t.Errorf("view should contain %q", want)
		}
	}
}
