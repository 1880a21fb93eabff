package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rilysh/emubox/cmd"
	"github.com/rilysh/emubox/internal/launcher"
	"github.com/rilysh/emubox/internal/logging"
	"github.com/rilysh/emubox/internal/logging/events"
	"github.com/rilysh/emubox/internal/store"
)

func main() {
	os.Exit(run())
}

func run() int {
	err := cmd.Execute()
	if err != nil && !errors.Is(err, cmd.ErrReported) {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "emubox: %v\n", err)
	}
	code := exitCode(err)
	events.App.Exit(code)
	return code
}

// exitCode maps a command failure onto the process exit status. A
// config that vanished between scan and confirmation still reports,
// but the run counts as clean. A failure to start the emulator keeps
// the shell's traditional 127.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var vanished *store.VanishedError
	if errors.As(err, &vanished) {
		return 0
	}
	var execErr *launcher.ExecError
	if errors.As(err, &execErr) {
		return 127
	}
	return 1
}
