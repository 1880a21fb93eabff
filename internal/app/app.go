// Package app runs one interactive selection session, from directory
// scan to a resolved config path.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/rilysh/emubox/internal/logging/events"
	"github.com/rilysh/emubox/internal/menu"
	"github.com/rilysh/emubox/internal/store"
	"github.com/rilysh/emubox/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// Outcome classifies how a selection session ended.
type Outcome int

const (
	// OutcomeCancelled means the menu was dismissed without a choice.
	OutcomeCancelled Outcome = iota
	// OutcomeSelected means a config was confirmed and resolved.
	OutcomeSelected
	// OutcomeEmpty means the config directory held no entries.
	OutcomeEmpty
)

// Result carries the session outcome back to the command layer.
type Result struct {
	Outcome Outcome
	Name    string
	Path    string
}

// ErrNoTerminal reports that the selection menu was requested without an
// interactive terminal attached.
var ErrNoTerminal = errors.New("the selection menu requires a terminal")

// Run scans the config directory and walks the user through the
// selection menu. A confirmed entry is re-checked on disk before its
// path is returned; a file that vanished mid-session surfaces as a
// store.VanishedError.
func Run(st *store.Store) (Result, error) {
	names, err := st.Scan()
	if err != nil {
		return Result{}, err
	}
	events.Store.Scan(st.Dir(), len(names))
	if len(names) == 0 {
		return Result{Outcome: OutcomeEmpty}, nil
	}
	if menu.Overflows(len(names)) {
		return Result{}, menu.ErrOverflow
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return Result{}, ErrNoTerminal
	}
	entries := menu.NewEntrySet(names)
	metrics := menu.MeasureSet(entries)
	events.UI.MenuOpen(entries.Len(), metrics.RowWidth, metrics.ColumnCapacity)
	program := tea.NewProgram(ui.NewModel(entries), tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return Result{Outcome: OutcomeCancelled}, nil
		}
		return Result{}, fmt.Errorf("menu session: %w", err)
	}
	model, ok := final.(*ui.Model)
	if !ok || model.Outcome() != ui.OutcomeSelected {
		return Result{Outcome: OutcomeCancelled}, nil
	}
	name := model.Choice()
	path, err := st.Resolve(name)
	if err != nil {
		var vanished *store.VanishedError
		if errors.As(err, &vanished) {
			events.Store.Vanished(name)
		}
		return Result{}, err
	}
	return Result{Outcome: OutcomeSelected, Name: name, Path: path}, nil
}
