package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at build time via
// -ldflags "-X github.com/rilysh/emubox/cmd.version=...".
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of emubox",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("emubox version %s\n", version)
	},
}
