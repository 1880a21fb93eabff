package cmd

import (
	"github.com/rilysh/emubox/internal/logging/events"
	"github.com/spf13/cobra"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Delete every file in the config directory",
	Args:  cobra.NoArgs,
	RunE:  runPurge,
}

func runPurge(cmd *cobra.Command, args []string) error {
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}
	removals, err := openStore(cfg).Purge()
	if err != nil {
		return err
	}
	if len(removals) == 0 {
		warn("no config files are present to purge.")
		return nil
	}
	// The sweep is best effort. A failed removal warns and keeps going.
	for _, removal := range removals {
		if removal.Err != nil {
			events.Store.PurgeError(removal.Path, removal.Err)
			warn("failed to remove %s: %v", removal.Path, removal.Err)
			continue
		}
		events.Store.Purge(removal.Path)
		notice("deleted: %s", removal.Path)
	}
	return nil
}
