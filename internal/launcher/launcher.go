// Package launcher starts the 86Box emulator against a chosen config
// file and waits for it to exit.
package launcher

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/rilysh/emubox/internal/logging/events"
)

// Params describe a single emulator invocation.
type Params struct {
	// ConfigPath is the absolute path of the config file handed to the
	// emulator via -C.
	ConfigPath string
	// Language selects the emulator UI language (-G). Ignored when
	// Settings is set.
	Language string
	// Fullscreen starts the emulator in fullscreen mode (-F). Ignored
	// when Settings is set.
	Fullscreen bool
	// Settings opens the emulator settings dialog (-S) instead of
	// booting the machine.
	Settings bool
}

// ExecError reports that the emulator binary could not be executed at
// all, as opposed to the emulator running and exiting on its own terms.
type ExecError struct {
	Binary string
	Err    error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v", e.Binary, e.Err)
}

func (e *ExecError) Unwrap() error { return e.Err }

// Args builds the emulator argument vector for p.
func Args(p Params) []string {
	args := []string{"-C", p.ConfigPath}
	if p.Settings {
		return append(args, "-S")
	}
	if p.Language != "" {
		args = append(args, "-G", p.Language)
	}
	if p.Fullscreen {
		args = append(args, "-F")
	}
	return args
}

// Launch runs the emulator binary with the arguments derived from p and
// waits for it to exit. The emulator's own exit status is traced but not
// treated as an error; only a failure to start the process at all is
// reported, as an *ExecError.
func Launch(binary string, p Params) error {
	args := Args(p)
	events.Launch.Start(binary, args)
	cmd := exec.Command(binary, args...)
	// Stdout and Stderr stay nil so the child writes to the null device
	// rather than over the terminal the menu just restored.
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			events.Launch.Exit(exitErr.ProcessState.String())
			return nil
		}
		events.Launch.Failure(err)
		return &ExecError{Binary: binary, Err: err}
	}
	events.Launch.Exit(cmd.ProcessState.String())
	return nil
}
