// Package timer provides scheduled callbacks that are owned and cancelled
// through a handle. Engines that tick a countdown or dramatize a delay hold
// the handle and stop it on reset or teardown.
package timer

import "time"

// Handle controls a scheduled callback. Stop may be called more than once and
// from inside the callback itself. Stop never waits for a running callback to
// return.
type Handle interface {
	Stop()
}

// Scheduler schedules callbacks. Callbacks run on a goroutine owned by the
// scheduler so they must synchronize access to any state they touch.
type Scheduler interface {

	// Every invokes fn repeatedly with d between calls until the handle
	// is stopped. The duration must be positive.
	Every(d time.Duration, fn func()) Handle

	// After invokes fn once after d unless the handle is stopped first.
	After(d time.Duration, fn func()) Handle
}

// Stop is a convenience for stopping a handle that may be nil.
func Stop(h Handle) {
	if h != nil {
		h.Stop()
	}
}
