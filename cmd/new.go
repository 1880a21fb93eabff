package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rilysh/emubox/internal/logging/events"
	"github.com/rilysh/emubox/internal/store"
	"github.com/rilysh/emubox/internal/ui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var newCmd = &cobra.Command{
	Use:   "new [name]...",
	Short: "Create empty machine configs",
	Long: `Create one empty config file per name, appending the .cfg extension
when the name does not already carry it. Without a name, an interactive
prompt asks for one.`,
	RunE: runNew,
}

func runNew(cmd *cobra.Command, args []string) error {
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}
	st := openStore(cfg)
	if len(args) == 0 {
		return promptForNew(st)
	}
	for _, name := range args {
		if err := createConfig(st, name); err != nil {
			warn("%v", err)
		}
	}
	return nil
}

// createConfig makes one config file. Names that look like options or
// paths are ignored with a warning, matching what delete skips.
func createConfig(st *store.Store, name string) error {
	if name != "" {
		switch name[0] {
		case '-', '/', '\\':
			warn("an unexpected character was passed. Ignored.")
			return nil
		}
	}
	path, err := st.Create(name)
	if err != nil {
		return err
	}
	events.Store.Create(path)
	notice("done: created %q.", filepath.Base(path))
	return nil
}

// promptForNew collects a name interactively and creates the config.
// Dismissing the prompt or submitting nothing creates no file.
func promptForNew(st *store.Store) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("the name prompt requires a terminal")
	}
	program := tea.NewProgram(ui.NewPrompt())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("name prompt: %w", err)
	}
	prompt, ok := final.(*ui.PromptModel)
	if !ok || !prompt.Submitted() {
		return nil
	}
	name := prompt.Value()
	if name == "" {
		return nil
	}
	return createConfig(st, name)
}
