package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-squash/internal/audio"
	"github.com/vovakirdan/tui-squash/internal/core"
	"github.com/vovakirdan/tui-squash/internal/games/squash"
)

// hudRows is the number of rows below the playfield: the status line and
// up to three rows of full help.
const hudRows = 4

// Options configures a play session.
type Options struct {
	Runtime core.RuntimeConfig
	Hold    time.Duration // Key latch window
	Logger  *log.Logger   // Nil discards
	Audio   *audio.Player // Nil plays silently
}

// Model is the Bubble Tea model for a squash session.
type Model struct {
	engine *squash.Engine
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	latch  *KeyLatch
	audio  *audio.Player
	logger *log.Logger

	lastTick time.Time
	best     int
	paused   bool
	quitting bool
}

// NewModel creates a model driving engine.
func NewModel(engine *squash.Engine, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = opts.Runtime.ScreenW

	return Model{
		engine: engine,
		screen: core.NewScreen(opts.Runtime.ScreenW, max(1, opts.Runtime.ScreenH-hudRows)),
		config: opts.Runtime,
		keys:   DefaultKeyMap(),
		help:   h,
		latch:  NewKeyLatch(opts.Hold),
		audio:  opts.Audio,
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input at now.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	action, ok := m.keys.Action(msg)
	if !ok {
		return m, nil
	}

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionPause:
		m.paused = !m.paused
		m.latch.Reset()
		m.logger.Debug("pause toggled", "paused", m.paused)
	case core.ActionStart:
		m.latch.Tap(action)
	default:
		m.latch.Press(action, now)
	}

	return m, nil
}

// handleResize adapts the playfield and the engine to the new terminal size.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width

	fieldH := max(1, msg.Height-hudRows)
	m.screen.Resize(msg.Width, fieldH)

	scale := m.engine.ScaleFactor()
	m.engine.OnResize(float64(msg.Width), float64(fieldH), scale)
	m.latch.Reset()
	m.logger.Info("resized", "width", msg.Width, "height", fieldH, "scale", scale)

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.config.Dt())
	m.lastTick = now

	in := m.latch.State(now)
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	result := m.engine.Update(dt, in)
	for _, ev := range result.Events {
		switch ev {
		case squash.EventWallBounce:
			m.best = max(m.best, result.State.Round)
			m.logger.Debug("wall bounce", "round", result.State.Round)
		case squash.EventMiss:
			m.logger.Info("miss", "best", m.best)
		default:
			m.logger.Debug(ev.String())
		}
	}
	if m.audio != nil {
		m.audio.PlayEvents(result.Events)
	}

	return m, tickCmd(m.config.TickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.engine.Snapshot()
	DrawSnapshot(m.screen, snap)

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderScreen(m.screen),
		RenderHUD(snap, m.best, m.paused),
		m.help.View(m.keys),
	)
}

// Paused reports whether updates are suspended.
func (m Model) Paused() bool {
	return m.paused
}

// Best returns the highest round reached this session.
func (m Model) Best() int {
	return m.best
}

// Run starts the Bubble Tea program for engine.
func Run(engine *squash.Engine, opts Options) error {
	p := tea.NewProgram(
		NewModel(engine, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
