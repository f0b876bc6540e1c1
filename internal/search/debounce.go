// Package search provides the rate limiting applied to bursty triggers such
// as the storefront search input.
package search

import (
	"sync"
	"time"
)

// DefaultWindow is the debounce window used when none is configured.
const DefaultWindow = 350 * time.Millisecond

// Debouncer collapses bursts of calls into a single invocation. When Call is
// invoked repeatedly within the window, only the function passed to the last
// call runs, after the window elapses with no further calls. Safe for
// concurrent use.
type Debouncer struct {
	window time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given window. Non-positive
// windows fall back to DefaultWindow.
func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Debouncer{window: window}
}

// Call schedules fn to run once the window elapses, replacing any pending
// invocation. fn runs on the timer goroutine.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, fn)
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
