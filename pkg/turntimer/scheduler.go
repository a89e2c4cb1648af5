package turntimer

import "time"

// Stopper cancels deferred work
type Stopper interface {
	// Stop returns false if the work already ran or was already stopped
	Stop() bool
}

// Scheduler runs deferred work
// Implementations must run fn on the same goroutine that mutates the table
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) Stopper
}
