package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/storage"
)

// Observer is notified after every simulation tick.
// It runs on the Bubble Tea update goroutine and must not block.
type Observer interface {
	Observe(g registry.Game, r core.StepResult)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(g registry.Game, r core.StepResult)

// Observe calls f(g, r).
func (f ObserverFunc) Observe(g registry.Game, r core.StepResult) {
	f(g, r)
}

// Options configures a game session.
type Options struct {
	Store    *storage.Store // nil disables score saving
	Player   string         // recorded with saved scores
	Logger   *log.Logger    // nil discards
	Observer Observer       // optional per-tick hook
	NoHelp   bool           // hide the key help footer
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	logger    *log.Logger
	keys      *KeyMapper
	help      help.Model
	pending   core.InputFrame // merged key presses since the last tick
	gameState core.GameState
	quitting  bool
	saved     bool // current run already recorded
	err       error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, gameRows(cfg.ScreenH, opts.NoHelp)),
		config:  cfg,
		opts:    opts,
		logger:  logger,
		keys:    NewKeyMapper(),
		help:    h,
		pending: core.NewInputFrame(),
	}
}

// gameRows returns the screen rows left for the game.
func gameRows(height int, noHelp bool) int {
	if !noHelp {
		height--
	}
	if height < 1 {
		height = 1
	}
	return height
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	// Initialize the game
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey merges a key press into the pending input frame. Terminals
// report no key releases, so a press counts as held for one tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.pending) {
		m.saveRun(m.gameState.Score, m.gameState.Level)
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events. The game keeps running;
// it adapts its viewport to the screen on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, gameRows(msg.Height, m.opts.NoHelp))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	prev := m.gameState

	result := m.game.Step(m.pending)
	m.pending = core.NewInputFrame()
	m.gameState = result.State

	if m.opts.Observer != nil {
		m.opts.Observer.Observe(m.game, result)
	}

	for _, e := range result.Events {
		if e.Kind == core.EventRunEnded {
			// The game has already started the next run; the level
			// reached is the one from the previous tick.
			m.saveRun(e.Value, prev.Level)
			m.saved = false
		}
	}

	if result.Err != nil {
		m.logger.Error("game stopped", "game", m.game.ID(), "err", result.Err)
		m.err = result.Err
		m.quitting = true
		return m, tea.Quit
	}

	if result.State.Quit {
		m.saveRun(result.State.Score, result.State.Level)
		m.quitting = true
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveRun records a run once. Runs without points are not recorded.
func (m *Model) saveRun(score, level int) {
	if m.saved || score <= 0 {
		return
	}
	m.saved = true

	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.game.ID(), m.opts.Player, score, level); err != nil {
		m.logger.Warn("cannot save score", "err", err)
		return
	}
	m.logger.Info("score saved", "player", m.opts.Player, "score", score, "level", level)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot dir", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.screen)

	out := RenderScreen(m.screen)
	if m.opts.NoHelp {
		return out
	}
	return out + "\n" + helpStyle.Render(m.help.View(m.keys.Keys))
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// Run starts the Bubble Tea program with the given game and returns the
// error that stopped it, if any.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}
