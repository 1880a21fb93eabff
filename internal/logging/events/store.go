package events

import "github.com/rilysh/emubox/internal/logging"

type StoreTracer struct{}

var Store = StoreTracer{}

func (StoreTracer) Scan(dir string, count int) {
	logging.Trace("store.scan", map[string]interface{}{"dir": dir, "entries": count})
}

func (StoreTracer) Create(path string) {
	logging.Trace("store.create", map[string]interface{}{"path": path})
}

func (StoreTracer) Delete(path string) {
	logging.Trace("store.delete", map[string]interface{}{"path": path})
}

func (StoreTracer) Purge(path string) {
	logging.Trace("store.purge", map[string]interface{}{"path": path})
}

func (StoreTracer) PurgeError(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("store.purge.error", map[string]interface{}{
		"path":  path,
		"error": err.Error(),
	})
}

func (StoreTracer) Vanished(name string) {
	logging.Trace("store.vanished", map[string]interface{}{"name": name})
}
