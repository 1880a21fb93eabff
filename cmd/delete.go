package cmd

import (
	"path/filepath"

	"github.com/rilysh/emubox/internal/logging/events"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <name>...",
	Short: "Delete machine configs",
	Long: `Delete one config file per name. A name without the .cfg extension
refers to the .cfg variant when that file exists.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}
	st := openStore(cfg)
	failed := false
	for _, name := range args {
		if name != "" {
			switch name[0] {
			case '-', '/', '\\':
				continue
			}
		}
		path, err := st.Delete(name)
		if err != nil {
			warn("%v", err)
			failed = true
			continue
		}
		events.Store.Delete(path)
		notice("deleted config: %s", filepath.Base(path))
	}
	if failed {
		return ErrReported
	}
	return nil
}
