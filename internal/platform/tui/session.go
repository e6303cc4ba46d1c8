package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-genius/internal/core"
	"github.com/vovakirdan/tui-genius/internal/registry"
	"github.com/vovakirdan/tui-genius/internal/storage"
)

// sessionScreen is the screen a session is showing.
type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenScores
)

// SessionModel manages the full session flow: menu -> game or scores -> menu.
// It is the top-level model of SSH sessions and of the local menu command.
type SessionModel struct {
	id       string
	gameID   string
	store    *storage.Store
	logger   *log.Logger // Optional
	config   core.RuntimeConfig
	player   string
	presets  []string
	screen   sessionScreen
	menu     MenuModel
	game     *GameModel
	scores   ScoreboardModel
	games    int // Games started so far, doubles as the tick ID
	quitting bool
}

// NewSessionModel creates a new session for the given game.
func NewSessionModel(store *storage.Store, gameID string, cfg core.RuntimeConfig, player string) SessionModel {
	m := SessionModel{
		id:     uuid.NewString(),
		gameID: gameID,
		store:  store,
		config: cfg,
		player: player,
	}

	// Offer the game's difficulty presets, starting from its default
	var preset string
	if g, err := registry.Create(gameID); err == nil {
		if t, ok := g.(registry.Tunable); ok {
			m.presets = append([]string{""}, t.Presets()...)
			preset = t.Preset()
		}
	}

	m.menu = NewMenuModel(store, gameID, m.presets, cfg)
	m.menu.SelectPreset(preset)
	return m
}

// WithLogger returns the session logging through l, tagged with the session ID.
func (m SessionModel) WithLogger(l *log.Logger) SessionModel {
	if l != nil {
		m.logger = l.With("session", m.id)
	}
	return m
}

// ID returns the unique session identifier.
func (m SessionModel) ID() string {
	return m.id
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Track the terminal size for screens created later
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenScores:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.menu.Chosen() {
	case MenuChoicePlay:
		return m.startGame()
	case MenuChoiceScores:
		m.scores = NewScoreboardModel(m.store, m.gameID, m.player, m.config.ScreenW, m.config.ScreenH)
		m.screen = screenScores
		return m, m.scores.Init()
	}

	return m, cmd
}

// startGame creates a fresh game and switches to it.
func (m SessionModel) startGame() (tea.Model, tea.Cmd) {
	game, err := registry.Create(m.gameID)
	if err != nil {
		m.logWarn("could not create game", "game", m.gameID, "error", err)
		m.backToMenu()
		return m, nil
	}

	preset := m.menu.Preset()
	if t, ok := game.(registry.Tunable); ok && preset != "" {
		t.SetPreset(preset)
	}

	m.games++
	gameModel := NewGameModel(game, m.store, m.config, m.player)
	gameModel.tickID = m.games
	gameModel.logger = m.logger
	gameModel.enableBack()

	m.game = &gameModel
	m.screen = screenGame
	m.logInfo("game started", "game", m.gameID, "difficulty", preset)

	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// The game asked to leave: drop its quit command and show the menu
	if m.game.BackToMenu() {
		m.logInfo("game left", "game", m.gameID, "score", m.game.State().Score)
		m.game = nil
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// updateScores handles updates when the scoreboard is shown.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if scores, ok := newModel.(ScoreboardModel); ok {
		m.scores = scores
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.scores.IsGoingBack() {
		m.backToMenu()
		return m, m.menu.Init()
	}

	return m, cmd
}

// backToMenu shows a fresh menu, keeping the selected difficulty.
func (m *SessionModel) backToMenu() {
	preset := m.menu.Preset()
	m.menu = NewMenuModel(m.store, m.gameID, m.presets, m.config)
	m.menu.SelectPreset(preset)
	m.screen = screenMenu
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenScores:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

func (m SessionModel) logInfo(msg string, keyvals ...any) {
	if m.logger != nil {
		m.logger.Info(msg, keyvals...)
	}
}

func (m SessionModel) logWarn(msg string, keyvals ...any) {
	if m.logger != nil {
		m.logger.Warn(msg, keyvals...)
	}
}

// RunSession runs the menu-driven session in the local terminal.
func RunSession(store *storage.Store, gameID string, cfg core.RuntimeConfig, player string) error {
	model := NewSessionModel(store, gameID, cfg, player)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
