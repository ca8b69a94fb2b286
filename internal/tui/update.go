package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case MsgTick:
		if msg.Generation != m.generation {
			// Tick from a replaced timer: let it die.
			return m, nil
		}
		m.view = m.tracker.Tick()
		return m, m.tick()
	}

	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Timeline):
		m.showTimeline = !m.showTimeline
	case key.Matches(msg, m.keys.Seconds):
		m.showSeconds = !m.showSeconds
	case key.Matches(msg, m.keys.Refresh):
		return m, m.restartTicker()
	}
	return m, nil
}
