package workers

import (
	"sync"
	"time"
)

// Debouncer delays values until no new value has arrived for a quiet period,
// then passes only the last one to fn.
type Debouncer[V any] struct {
	clock Clock
	delay time.Duration
	fn    func(V)

	mu    sync.Mutex
	timer Timer
	// gen invalidates timers that fired while being replaced or cancelled.
	gen uint64
}

// NewDebouncer returns a Debouncer calling fn delay after the last Trigger.
func NewDebouncer[V any](clock Clock, delay time.Duration, fn func(V)) *Debouncer[V] {
	if clock == nil {
		clock = RealClock()
	}
	return &Debouncer[V]{clock: clock, delay: delay, fn: fn}
}

// Trigger records v and restarts the quiet period.
func (d *Debouncer[V]) Trigger(v V) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = d.clock.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.gen != gen {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()

		d.fn(v)
	})
}

// Cancel drops the pending value, if any.
func (d *Debouncer[V]) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a value is waiting for the quiet period to end.
func (d *Debouncer[V]) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
