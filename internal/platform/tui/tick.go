// Package tui provides the Bubble Tea integration for the Genius platform.
// It handles the terminal UI loop, input mapping, screens and SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// The id ties the tick to the game model that scheduled it, so a tick
// still in flight when a game closes never drives the next one.
type TickMsg struct {
	id   int
	Time time.Time
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate, id int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{id: id, Time: t}
	})
}
