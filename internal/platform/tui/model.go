package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/meteors/internal/config"
	"github.com/vovakirdan/meteors/internal/core"
	"github.com/vovakirdan/meteors/internal/storage"
)

// holdTicks is how long a rotate key counts as held after a press.
// Terminals report key repeats, not releases.
const holdTicks = 8

// Model is the Bubble Tea model running one game.
type Model struct {
	game       Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *KeyMapper
	inputFrame core.InputFrame
	gameState  core.GameState
	holdLeft   int
	holdRight  int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// store and logger may be nil.
func NewModel(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		config:     cfg,
		keys:       NewKeyMapper(),
		inputFrame: core.NewInputFrame(),
	}
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.inputFrame.Set(core.ActionConfirm)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		}
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionRotateLeft:
		m.holdLeft, m.holdRight = holdTicks, 0
	case core.ActionRotateRight:
		m.holdRight, m.holdLeft = holdTicks, 0
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize follows the terminal size. The simulation is size independent.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick runs one simulation tick and stores finished runs.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.holdLeft > 0 {
		m.inputFrame.Set(core.ActionRotateLeft)
		m.holdLeft--
	}
	if m.holdRight > 0 {
		m.inputFrame.Set(core.ActionRotateRight)
		m.holdRight--
	}

	// The frame is cleared and reused after Step.
	result := m.game.Step(m.inputFrame.Clone())
	m.gameState = result.State

	for _, ev := range result.Events {
		switch ev.Type {
		case core.EventGameOver:
			m.holdLeft, m.holdRight = 0, 0
			m.saveScore(ev)
		case core.EventLevelUp:
			m.logger.Info("level up", "level", ev.Level, "score", ev.Score)
		}
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScore records a finished run. Empty runs are not stored.
func (m Model) saveScore(ev core.Event) {
	m.logger.Info("game over", "score", ev.Score, "level", ev.Level)
	if m.store == nil || ev.Score <= 0 {
		return
	}
	if _, err := m.store.SaveScore(m.game.ID(), ev.Score, ev.Level); err != nil {
		m.logger.Error("could not save score", "err", err)
	}
}

// saveScreenshot writes the current screen to ~/.meteors/screenshots.
func (m Model) saveScreenshot() error {
	m.game.Render(m.screen)

	dir := filepath.Join(config.DataDir(), "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the game.
func Run(game Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
