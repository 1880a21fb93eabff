package events

import "github.com/rilysh/emubox/internal/logging"

type LaunchTracer struct{}

var Launch = LaunchTracer{}

func (LaunchTracer) Start(binary string, args []string) {
	logging.Trace("launch.start", map[string]interface{}{"binary": binary, "args": args})
}

func (LaunchTracer) Exit(state string) {
	logging.Trace("launch.exit", map[string]interface{}{"state": state})
}

func (LaunchTracer) Failure(err error) {
	if err == nil {
		return
	}
	logging.Trace("launch.failure", map[string]interface{}{"error": err.Error()})
}
