package ui

import (
	"strings"

	"github.com/rilysh/emubox/internal/logging/events"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const promptLabel = "Name for the new config:"

// PromptModel implements the Bubble Tea model for the new-config name
// prompt, shown when no name was given on the command line.
type PromptModel struct {
	input     textinput.Model
	submitted bool
	cancelled bool
}

// NewPrompt initialises the name prompt.
func NewPrompt() *PromptModel {
	ti := textinput.New()
	ti.Placeholder = "machine.cfg"
	ti.CharLimit = 128
	ti.Width = 40
	if styles.Cursor != nil {
		ti.Cursor.Style = *styles.Cursor
	}
	ti.Focus()
	return &PromptModel{input: ti}
}

// Init is part of the tea.Model interface.
func (p *PromptModel) Init() tea.Cmd {
	events.Prompt.Open(promptLabel)
	return textinput.Blink
}

// Update responds to Bubble Tea messages.
func (p *PromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "enter":
			p.submitted = true
			events.Prompt.Submit(p.Value())
			return p, tea.Quit
		case "esc", "ctrl+c":
			p.cancelled = true
			events.Prompt.Cancel()
			return p, tea.Quit
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// View implements tea.Model.
func (p *PromptModel) View() string {
	label := promptLabel
	if styles.PromptLabel != nil {
		label = styles.PromptLabel.Render(label)
	}
	return label + "\n" + p.input.View() + "\n"
}

// Value returns the entered name with surrounding whitespace removed.
func (p *PromptModel) Value() string {
	return strings.TrimSpace(p.input.Value())
}

// Submitted reports whether the user confirmed the input.
func (p *PromptModel) Submitted() bool {
	return p.submitted
}

// Cancelled reports whether the prompt was dismissed.
func (p *PromptModel) Cancelled() bool {
	return p.cancelled
}
