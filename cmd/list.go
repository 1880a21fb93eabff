package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/rilysh/emubox/internal/format/table"
	"github.com/rilysh/emubox/internal/logging/events"
	"github.com/rilysh/emubox/internal/menu"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List machine configs",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := runtimeConfig()
	if err != nil {
		return err
	}
	st := openStore(cfg)
	names, err := st.Scan()
	if err != nil {
		return err
	}
	events.Store.Scan(st.Dir(), len(names))
	if len(names) == 0 {
		warn("no configs are available.")
		return nil
	}

	rows := [][]string{{"NAME", "SIZE", "MODIFIED"}}
	for _, name := range menu.NewEntrySet(names).Names() {
		info, err := os.Stat(filepath.Join(st.Dir(), name))
		if err != nil {
			rows = append(rows, []string{name, "-", "-"})
			continue
		}
		rows = append(rows, []string{
			name,
			strconv.FormatInt(info.Size(), 10),
			info.ModTime().Format("2006-01-02 15:04"),
		})
	}
	alignments := []table.Alignment{table.AlignLeft, table.AlignRight, table.AlignLeft}
	for _, line := range table.Format(rows, alignments) {
		fmt.Println(line)
	}
	return nil
}
