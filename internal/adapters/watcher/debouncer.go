// Package watcher implements file system watching for rebuild-on-change.
package watcher

import (
	"sync"
	"time"
	"unique"
)

// Debouncer coalesces rapid file system events into batched rebuild
// triggers. Editors often emit several events per save; without
// coalescing each one would start a build.
type Debouncer struct {
	mu       sync.Mutex
	pending  map[unique.Handle[string]]struct{}
	timer    *time.Timer
	window   time.Duration
	callback func(paths []string)
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func(paths []string)) *Debouncer {
	return &Debouncer{
		pending:  make(map[unique.Handle[string]]struct{}),
		window:   window,
		callback: callback,
	}
}

// Add adds a file path to the pending events set.
func (d *Debouncer) Add(path string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	// Interned handles deduplicate repeated events for the same path.
	handle := unique.Make(path)
	d.pending[handle] = struct{}{}

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()

	// Protects against a race with Flush.
	if len(d.pending) == 0 {
		d.timer = nil
		d.mu.Unlock()
		return
	}

	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}

	d.pending = make(map[unique.Handle[string]]struct{})
	d.timer = nil
	d.mu.Unlock()

	// Asynchronous to match Flush behavior.
	if len(paths) > 0 && d.callback != nil {
		go d.callback(paths)
	}
}

// Flush immediately triggers the debounce callback with all pending paths.
// It blocks until the callback completes, making it suitable for graceful
// shutdown where pending work must finish before proceeding.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than processing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}

	paths := make([]string, 0, len(d.pending))
	for handle := range d.pending {
		paths = append(paths, handle.Value())
	}
	d.pending = make(map[unique.Handle[string]]struct{})
	d.mu.Unlock()

	// Synchronous, unlike fire. Flush callers need completion.
	if len(paths) > 0 && d.callback != nil {
		d.callback(paths)
	}
}
