package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-genius/internal/core"
)

// keyMsg builds the key message Bubble Tea sends for the given key name.
func keyMsg(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
	}
}

func TestKeyMapTiles(t *testing.T) {
	keys := DefaultKeyMap()

	for tile := 0; tile < 9; tile++ {
		frame := core.NewInputFrame()
		name := string(rune('1' + tile))
		if keys.MapKeyToFrame(keyMsg(name), &frame) {
			t.Fatalf("key %s should not quit", name)
		}
		if len(frame.Taps) != 1 || frame.Taps[0] != tile {
			t.Errorf("key %s: taps = %v, want [%d]", name, frame.Taps, tile)
		}
	}

	frame := core.NewInputFrame()
	keys.MapKeyToFrame(keyMsg("0"), &frame)
	if len(frame.Taps) != 0 {
		t.Errorf("key 0 should not tap, got %v", frame.Taps)
	}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		key    string
		action core.Action
	}{
		{"enter", core.ActionConfirm},
		{"y", core.ActionConfirm},
		{"n", core.ActionBack},
		{"esc", core.ActionBack},
		{"r", core.ActionRestart},
		{"p", core.ActionPause},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			frame := core.NewInputFrame()
			if keys.MapKeyToFrame(keyMsg(tt.key), &frame) {
				t.Fatal("should not quit")
			}
			if !frame.Has(tt.action) {
				t.Errorf("expected action %v", tt.action)
			}
		})
	}
}

func TestKeyMapQuit(t *testing.T) {
	keys := DefaultKeyMap()

	for _, name := range []string{"q", "ctrl+c"} {
		frame := core.NewInputFrame()
		if !keys.MapKeyToFrame(keyMsg(name), &frame) {
			t.Errorf("%s should quit", name)
		}
	}

	frame := core.NewInputFrame()
	if keys.MapKeyToFrame(keyMsg("x"), &frame) {
		t.Error("x should not quit")
	}
	if len(frame.Actions) != 0 || len(frame.Taps) != 0 {
		t.Errorf("x should not produce input, got %+v", frame)
	}
}

func TestKeyMapBackDisabledByDefault(t *testing.T) {
	keys := DefaultKeyMap()
	if keys.Back.Enabled() {
		t.Error("back to menu should be disabled outside sessions")
	}

	for _, b := range keys.ShortHelp() {
		if b.Help().Key == "" {
			t.Error("every short help binding needs a help key")
		}
	}
}
