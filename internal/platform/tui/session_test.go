package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-genius/internal/core"
	_ "github.com/vovakirdan/tui-genius/internal/games/genius"
	"github.com/vovakirdan/tui-genius/internal/storage"
)

// containsPlain reports whether the rendered view contains text once styling is removed.
func containsPlain(view, text string) bool {
	return strings.Contains(ansi.Strip(view), text)
}

func newTestSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 10, Seed: 7}
	m := NewSessionModel(store, "genius", cfg, "alice")
	return sendSession(t, m, tea.WindowSizeMsg{Width: 80, Height: 25})
}

func sendSession(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return s
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := newTestSession(t, nil)
	b := newTestSession(t, nil)

	if a.ID() == "" || a.ID() == b.ID() {
		t.Errorf("session IDs should be unique, got %q and %q", a.ID(), b.ID())
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	m := newTestSession(t, nil)
	if m.screen != screenMenu {
		t.Fatal("session should start on the menu")
	}
	if !containsPlain(m.View(), "High Scores") {
		t.Error("menu should list the scoreboard")
	}

	m = sendSession(t, m, keyMsg("enter"))
	if m.screen != screenGame || m.game == nil {
		t.Fatal("Play should start a game")
	}
	if m.game.tickID != 1 {
		t.Errorf("first game tick ID = %d, want 1", m.game.tickID)
	}
	if !m.game.keys.Back.Enabled() {
		t.Error("games in a session can go back to the menu")
	}

	// Ticks of the running game are forwarded
	m = sendSession(t, m, TickMsg{id: m.game.tickID})
	if m.game.State().Paused {
		t.Error("game should be running")
	}

	m = sendSession(t, m, keyMsg("b"))
	if m.screen != screenMenu || m.game != nil {
		t.Fatal("b should return to the menu")
	}
	if m.quitting {
		t.Error("leaving a game must not end the session")
	}

	// A late tick of the closed game lands on the menu and is ignored
	m = sendSession(t, m, TickMsg{id: 1})
	if m.screen != screenMenu {
		t.Error("stale tick should not change screens")
	}

	m = sendSession(t, m, keyMsg("enter"))
	if m.game.tickID != 2 {
		t.Errorf("second game tick ID = %d, want 2", m.game.tickID)
	}
}

func TestSessionScoreboard(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()
	store.SaveScore("genius", "alice", 4) //nolint:errcheck
	store.SaveScore("genius", "bob", 6)   //nolint:errcheck

	m := newTestSession(t, store)
	m = sendSession(t, m, keyMsg("down"))
	m = sendSession(t, m, keyMsg("enter"))
	if m.screen != screenScores {
		t.Fatal("High Scores should open the scoreboard")
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - Genius", "bob", "Your best: 4", "Players: 2"} {
		if !containsPlain(view, want) {
			t.Errorf("scoreboard should contain %q", want)
		}
	}

	m = sendSession(t, m, keyMsg("tab"))
	if !containsPlain(m.View(), "RECENT GAMES") {
		t.Error("tab should switch to recent games")
	}

	m = sendSession(t, m, keyMsg("esc"))
	if m.screen != screenMenu {
		t.Fatal("esc should return to the menu")
	}
	if !containsPlain(m.View(), "High score: 6") {
		t.Error("menu should show the high score")
	}
}

func TestSessionDifficultySurvivesGames(t *testing.T) {
	m := newTestSession(t, nil)
	if m.menu.Preset() != "" {
		t.Fatalf("menu should start on the configured timing, got %q", m.menu.Preset())
	}

	m = sendSession(t, m, keyMsg("right"))
	m = sendSession(t, m, keyMsg("right"))
	if m.menu.Preset() != "normal" {
		t.Fatalf("preset = %q, want normal", m.menu.Preset())
	}
	if !containsPlain(m.View(), "Difficulty: < normal >") {
		t.Error("menu should show the difficulty")
	}

	m = sendSession(t, m, keyMsg("enter"))
	m = sendSession(t, m, keyMsg("b"))
	if m.menu.Preset() != "normal" {
		t.Errorf("preset after a game = %q, want normal", m.menu.Preset())
	}

	// Wraps around
	m = sendSession(t, m, keyMsg("left"))
	m = sendSession(t, m, keyMsg("left"))
	m = sendSession(t, m, keyMsg("left"))
	if m.menu.Preset() != "fixed" {
		t.Errorf("preset = %q, want fixed", m.menu.Preset())
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession(t, nil)

	next, cmd := m.Update(keyMsg("q"))
	s := next.(SessionModel)
	if !s.quitting || cmd == nil {
		t.Error("q on the menu should quit")
	}
	if s.View() != "" {
		t.Error("quitting session should render nothing")
	}

	// Quit from inside a game ends the session too
	m = sendSession(t, newTestSession(t, nil), keyMsg("enter"))
	next, cmd = m.Update(keyMsg("ctrl+c"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("ctrl+c in a game should quit")
	}

	// The Quit menu item
	m = newTestSession(t, nil)
	m = sendSession(t, m, keyMsg("down"))
	m = sendSession(t, m, keyMsg("down"))
	next, cmd = m.Update(keyMsg("enter"))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("Quit item should end the session")
	}
}
