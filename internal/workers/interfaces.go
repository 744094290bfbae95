// Package workers provides the timing primitives of the synchronizers
// (debounce, throttle) and the background jobs that keep screens fresh.
//
// Timing is driven by a Clock so that tests can advance time by hand.
package workers

import (
	"context"
	"time"
)

// Worker is a background job with an explicit lifecycle.
//
// Start must not block; Stop blocks until the job has exited and is a no-op
// on a stopped job.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Timer is the part of *time.Timer the primitives use.
type Timer interface {
	// Stop prevents the timer from firing. It returns false if the timer
	// already fired or was stopped.
	Stop() bool
}

// Clock abstracts the wall clock.
type Clock interface {
	Now() time.Time
	// AfterFunc calls f in its own goroutine after d.
	AfterFunc(d time.Duration, f func()) Timer
}
