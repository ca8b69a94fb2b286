// Package tui renders the live classroom clock in the terminal.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/classclock/internal/app"
	"github.com/runoshun/classclock/internal/domain"
	"github.com/runoshun/classclock/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	tracker *usecase.SessionTracker
	logger  domain.Logger

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model

	// State
	view domain.ViewState

	// Numeric state (smaller types last)
	period        time.Duration
	timelineWidth int
	width         int
	height        int
	generation    int
	showTimeline  bool
	showSeconds   bool
}

// New creates a new TUI Model with the given container.
// The first sample is taken immediately so the first frame is complete.
func New(c *app.Container) *Model {
	cfg := c.Config
	m := &Model{
		tracker:       c.SessionTracker(),
		logger:        c.Logger,
		keys:          DefaultKeyMap(),
		styles:        DefaultStyles(),
		help:          help.New(),
		period:        cfg.Tick.Period,
		timelineWidth: cfg.Display.TimelineWidth,
		showTimeline:  true,
		showSeconds:   cfg.Display.ShowSeconds,
	}
	m.view = m.tracker.Tick()
	return m
}

// Init starts the tick timer.
func (m *Model) Init() tea.Cmd {
	m.logger.Info("session", fmt.Sprintf("view started (tick %s)", m.period))
	return m.tick()
}

// tick schedules the next MsgTick for the current generation.
// One-second periods are aligned to the system clock so the displayed
// seconds change on the second boundary.
func (m *Model) tick() tea.Cmd {
	gen := m.generation
	msg := func(time.Time) tea.Msg { return MsgTick{Generation: gen} }
	if m.period == time.Second {
		return tea.Every(m.period, msg)
	}
	return tea.Tick(m.period, msg)
}

// restartTicker abandons the running timer and starts a fresh one.
// The old timer's pending tick is dropped because its generation no
// longer matches.
func (m *Model) restartTicker() tea.Cmd {
	m.generation++
	m.view = m.tracker.Tick()
	return m.tick()
}

// ViewState returns the state rendered by the last frame.
func (m *Model) ViewState() domain.ViewState {
	return m.view
}

// Run launches the TUI in the alternate screen and blocks until it exits.
func Run(c *app.Container) error {
	m := New(c)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	m.logger.Info("session", "view stopped")
	return err
}
