package ui

import (
	"reflect"

	"github.com/rilysh/emubox/internal/menu"
	"github.com/rilysh/emubox/internal/theme"
	"github.com/rilysh/emubox/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Outcome records how a menu session ended.
type Outcome int

const (
	// OutcomeNone means the session is still running or was torn down
	// without a decision.
	OutcomeNone Outcome = iota
	// OutcomeSelected means the user confirmed an entry.
	OutcomeSelected
	// OutcomeCancelled means the user backed out of the menu.
	OutcomeCancelled
)

const menuTitle = "Select a config"

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Model implements the Bubble Tea model for the config selection menu.
type Model struct {
	entries menu.EntrySet
	metrics menu.Metrics
	session *state.State
	width   int
	height  int
	outcome Outcome
	choice  string

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the menu over an already scanned entry set.
func NewModel(entries menu.EntrySet) *Model {
	m := &Model{
		entries: entries,
		metrics: menu.MeasureSet(entries),
		session: state.New(entries.Len()),
	}
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, nil
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// Outcome reports how the session ended.
func (m *Model) Outcome() Outcome {
	return m.outcome
}

// Choice returns the confirmed entry name. Empty unless Outcome is
// OutcomeSelected.
func (m *Model) Choice() string {
	return m.choice
}

// Metrics exposes the frame dimensions the menu renders with.
func (m *Model) Metrics() menu.Metrics {
	return m.metrics
}
