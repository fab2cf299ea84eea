package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/paintdrop/internal/core"
	"github.com/vovakirdan/paintdrop/internal/registry"
	"github.com/vovakirdan/paintdrop/internal/storage"
)

// SessionModel is the top-level model for a player session: the game
// screen, with the scoreboard one key away. Local play and SSH sessions
// both run it.
type SessionModel struct {
	store      *storage.Store
	logger     *log.Logger
	game       GameModel
	scoreboard ScoreboardModel
	onScores   bool
	width      int
	height     int
	quitting   bool
}

// NewSessionModel creates a session around the given game.
func NewSessionModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	gm := NewGameModel(game, store, cfg, logger)
	return SessionModel{
		store:  store,
		logger: gm.logger,
		game:   gm,
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
	}
}

// Init starts the game tick loop.
func (m SessionModel) Init() tea.Cmd {
	return m.game.Init()
}

// Update routes messages to the active screen. Ticks always reach the
// game so its loop never stalls; the game only leaves when nothing is
// running.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		return m.updateGame(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		next, cmd := m.game.Update(msg)
		m.game = next.(GameModel)
		if m.onScores {
			sb, _ := m.scoreboard.Update(msg)
			m.scoreboard = sb.(ScoreboardModel)
		}
		return m, cmd

	case tea.KeyMsg:
		if m.onScores {
			return m.updateScoreboard(msg)
		}
		return m.updateGame(msg)
	}

	return m, nil
}

// updateGame forwards a message to the game screen.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(GameModel)

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.Leaving() {
		m.game.leaving = false
		m.onScores = true
		m.scoreboard = NewScoreboardModel(m.store, m.game.game.ID(), m.game.game.Title(), m.width, m.height)
		m.logger.Debug("scoreboard opened")
	}

	return m, cmd
}

// updateScoreboard forwards a key to the scoreboard screen.
func (m SessionModel) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.scoreboard.Update(msg)
	m.scoreboard = next.(ScoreboardModel)

	if m.scoreboard.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Going back would quit a standalone scoreboard; here it returns to the game
	if m.scoreboard.IsGoingBack() {
		m.onScores = false
		return m, nil
	}

	return m, cmd
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.onScores {
		return m.scoreboard.View()
	}
	return m.game.View()
}

// Run starts the Bubble Tea program for a local session.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewSessionModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
