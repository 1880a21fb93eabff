package events

import "github.com/rilysh/emubox/internal/logging"

type UITracer struct{}

type PromptTracer struct{}

var (
	UI     = UITracer{}
	Prompt = PromptTracer{}
)

func (UITracer) MenuOpen(count, rowWidth, columnCapacity int) {
	logging.Trace("menu.open", map[string]interface{}{
		"entries": count,
		"width":   rowWidth,
		"height":  columnCapacity,
	})
}

func (UITracer) MenuKey(key string, selection, pageStart int) {
	logging.Trace("menu.key", map[string]interface{}{
		"key":       key,
		"selection": selection,
		"page":      pageStart,
	})
}

func (UITracer) MenuConfirm(index int, name string) {
	logging.Trace("menu.confirm", map[string]interface{}{"index": index, "name": name})
}

func (UITracer) MenuCancel() {
	logging.Trace("menu.cancel", nil)
}

func (PromptTracer) Open(title string) {
	logging.Trace("prompt.open", map[string]interface{}{"title": title})
}

func (PromptTracer) Submit(value string) {
	logging.Trace("prompt.submit", map[string]interface{}{"value": value})
}

func (PromptTracer) Cancel() {
	logging.Trace("prompt.cancel", nil)
}
