package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Game is the interface the driver needs from a playable game.
type Game interface {
	ID() string
	Title() string
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(input core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
	Snapshot() snake.Snapshot
	Outcome() snake.Outcome
}

// Options configures a TUI session.
type Options struct {
	Interval time.Duration // Time between ticks
	Seed     int64         // 0 picks a time based seed
	Width    int           // Initial terminal width
	Height   int           // Initial terminal height
	Logger   *log.Logger   // nil discards log output
}

const helpHeight = 1

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	screen     *core.Screen
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	config     core.RuntimeConfig
	interval   time.Duration
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	reported   bool // Whether the end of the current round was logged
	now        func() time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, opts Options) *Model {
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	cfg := core.RuntimeConfig{
		ScreenW: opts.Width,
		ScreenH: max(opts.Height-helpHeight, 0),
		Seed:    opts.Seed,
	}

	m := &Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		config:     cfg,
		interval:   opts.Interval,
		inputFrame: core.NewInputFrame(),
		now:        time.Now,
	}
	m.help.Width = opts.Width

	m.game.Reset(cfg)
	m.gameState = m.game.State()
	m.logger.Info("round started", "game", game.ID(), "title", game.Title(), "seed", cfg.Seed)
	return m
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return tickCmd(m.interval)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

// handleKey queues the action for the next tick. Keys are not applied
// immediately so that one tick sees every key pressed since the last one.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.gameState.Score)
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events. The round keeps running.
func (m *Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-helpHeight, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)
	m.game.Resize(m.config.ScreenW, m.config.ScreenH)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation step and schedules the next one so that
// ticks start one interval apart regardless of processing time.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	start := m.now()
	wasOver := m.gameState.GameOver

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	switch {
	case wasOver && !m.gameState.GameOver:
		m.reported = false
		m.logger.Info("round started", "game", m.game.ID())
	case m.gameState.GameOver && !m.reported:
		m.reported = true
		m.logRoundOver()
	case result.Moved && m.game.Outcome() == snake.AteApple:
		m.logger.Debug("apple eaten", "score", m.gameState.Score)
	}

	return m, tickCmd(FrameDelay(m.interval, m.now().Sub(start)))
}

func (m *Model) logRoundOver() {
	snap := m.game.Snapshot()
	m.logger.Info("round over",
		"outcome", snap.Outcome.String(),
		"reason", snap.Outcome.Reason(),
		"score", snap.Score,
		"length", snap.Len(),
		"ticks", snap.Tick,
	)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// GameState returns the state observed after the last tick.
func (m *Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
