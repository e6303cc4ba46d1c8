package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-genius/internal/core"
	"github.com/vovakirdan/tui-genius/internal/storage"
)

// MenuChoice is what the player picked on the title menu.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// menuItem is a selectable line of the title menu.
type menuItem struct {
	choice MenuChoice
	title  string
}

var menuItems = []menuItem{
	{MenuChoicePlay, "Play"},
	{MenuChoiceScores, "High Scores"},
	{MenuChoiceQuit, "Quit"},
}

// titleColors colors the letters of the menu title like the board tiles.
var titleColors = []core.Color{
	core.ColorBlue, core.ColorRed, core.ColorYellow,
	core.ColorPurple, core.ColorGreen, core.ColorOrange,
}

var (
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title menu.
type MenuModel struct {
	cursor    int
	presets   []string // Difficulty presets, "" stands for the configured timing
	preset    int
	highScore int
	width     int
	height    int
	keys      MenuKeyMap
	help      help.Model
	chosen    MenuChoice
	quitting  bool
}

// NewMenuModel creates a new menu model.
// The high score is read from the store when one is available.
func NewMenuModel(store *storage.Store, gameID string, presets []string, cfg core.RuntimeConfig) MenuModel {
	h := help.New()
	h.Width = cfg.ScreenW

	m := MenuModel{
		presets: presets,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
		keys:    DefaultMenuKeyMap(),
		help:    h,
	}
	if len(presets) == 0 {
		m.keys.Left.SetEnabled(false)
		m.keys.Right.SetEnabled(false)
	}

	if store != nil {
		if high, err := store.HighScore(gameID); err == nil {
			m.highScore = high
		}
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Left):
		m.preset = (m.preset + len(m.presets) - 1) % len(m.presets)

	case key.Matches(msg, m.keys.Right):
		m.preset = (m.preset + 1) % len(m.presets)

	case key.Matches(msg, m.keys.Select):
		m.chosen = menuItems[m.cursor].choice
		if m.chosen == MenuChoiceQuit {
			m.quitting = true
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(m.renderTitle(), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(menuDimStyle.Render("Watch the tiles, then repeat them"), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.title
		if i == m.cursor {
			line = menuCursorStyle.Render("> " + item.title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if len(m.presets) > 0 {
		preset := m.Preset()
		if preset == "" {
			preset = "default"
		}
		b.WriteString(centerText(fmt.Sprintf("Difficulty: < %s >", preset), m.width))
		b.WriteString("\n")
	}
	if m.highScore > 0 {
		b.WriteString(centerText(fmt.Sprintf("High score: %d rounds", m.highScore), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	b.WriteString("\n")

	return b.String()
}

// renderTitle spells the game name with one tile color per letter.
func (m MenuModel) renderTitle() string {
	letters := []rune("GENIUS")
	parts := make([]string, len(letters))
	for i, r := range letters {
		parts[i] = styleFor(titleColors[i%len(titleColors)]).Bold(true).Render(string(r))
	}
	return strings.Join(parts, " ")
}

// Chosen returns the item the player selected, MenuChoiceNone if none yet.
func (m MenuModel) Chosen() MenuChoice {
	return m.chosen
}

// Preset returns the selected difficulty preset.
// Empty means the game keeps its configured timing.
func (m MenuModel) Preset() string {
	if len(m.presets) == 0 {
		return ""
	}
	return m.presets[m.preset]
}

// SelectPreset moves the difficulty selector to the named preset if it exists.
func (m *MenuModel) SelectPreset(name string) {
	for i, p := range m.presets {
		if p == name {
			m.preset = i
			return
		}
	}
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}
