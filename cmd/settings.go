package cmd

import (
	"github.com/rilysh/emubox/internal/app"
	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings [name]",
	Short: "Pick a config and open the 86Box settings dialog",
	Long: `Open the 86Box settings dialog for the named config, or for the one
picked from the selection menu when no name is given. The emulator does
not start a machine in this mode.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}
	st := openStore(cfg)
	if len(args) == 1 {
		path, err := st.Find(args[0])
		if err != nil {
			return err
		}
		return launchConfig(cfg, path, true)
	}
	result, err := app.Run(st)
	if err != nil {
		return err
	}
	switch result.Outcome {
	case app.OutcomeEmpty:
		warn("no configs are available.")
		return nil
	case app.OutcomeCancelled:
		return nil
	}
	return launchConfig(cfg, result.Path, true)
}
