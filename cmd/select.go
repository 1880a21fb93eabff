package cmd

import (
	"path/filepath"

	"github.com/rilysh/emubox/internal/app"
	"github.com/rilysh/emubox/internal/config"
	"github.com/rilysh/emubox/internal/launcher"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	languageFlag   string
	fullscreenFlag bool
	fsrFlag        bool

	selectCmd = &cobra.Command{
		Use:   "select [name]",
		Short: "Pick a config and launch 86Box",
		Long: `Launch 86Box with the named config, or open the selection menu when
no name is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSelect,
	}
)

func init() {
	selectCmd.Flags().StringVar(&languageFlag, "language", "", "language code to launch 86Box with")
	selectCmd.Flags().BoolVar(&fullscreenFlag, "fullscreen", false, "launch 86Box in fullscreen")
	selectCmd.Flags().BoolVar(&fsrFlag, "fsr", false, "alias of --fullscreen")
	selectCmd.Flags().MarkHidden("fsr")
	viper.BindPFlag("language", selectCmd.Flags().Lookup("language"))
	viper.BindPFlag("fullscreen", selectCmd.Flags().Lookup("fullscreen"))
}

func runSelect(cmd *cobra.Command, args []string) error {
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}
	if fsrFlag {
		cfg.Fullscreen = true
	}
	st := openStore(cfg)
	if len(args) == 1 {
		path, err := st.Find(args[0])
		if err != nil {
			return err
		}
		return launchConfig(cfg, path, false)
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
	return launchConfig(cfg, result.Path, false)
}

// launchConfig echoes the chosen config, then hands off to the emulator.
func launchConfig(cfg config.Config, path string, settings bool) error {
	notice("using config: %s", filepath.Base(path))
	return launcher.Launch(cfg.Emulator, launcher.Params{
		ConfigPath: path,
		Language:   cfg.Language,
		Fullscreen: cfg.Fullscreen,
		Settings:   settings,
	})
}
