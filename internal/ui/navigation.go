package ui

import (
	"github.com/rilysh/emubox/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "enter":
		return m.confirm()
	case "backspace", "esc", "ctrl+c":
		return m.cancel()
	case "up":
		if m.session.MoveUp() {
			events.UI.MenuKey("up", m.session.Selection, m.session.PageStart)
		}
	case "down":
		if m.session.MoveDown() {
			events.UI.MenuKey("down", m.session.Selection, m.session.PageStart)
		}
	case "right":
		if m.session.NextPage() {
			events.UI.MenuKey("right", m.session.Selection, m.session.PageStart)
		}
	case "left":
		if m.session.PrevPage() {
			events.UI.MenuKey("left", m.session.Selection, m.session.PageStart)
		}
	}
	// Anything else leaves the session untouched.
	return nil
}

func (m *Model) confirm() tea.Cmd {
	if m.entries.Empty() {
		return m.cancel()
	}
	entry := m.entries.At(m.session.Selection)
	m.outcome = OutcomeSelected
	m.choice = entry.Name
	events.UI.MenuConfirm(m.session.Selection, entry.Name)
	return tea.Quit
}

func (m *Model) cancel() tea.Cmd {
	m.outcome = OutcomeCancelled
	m.choice = ""
	events.UI.MenuCancel()
	return tea.Quit
}
