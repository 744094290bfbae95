package workers

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Throttler passes at most one value per interval to fn.
//
// A value arriving while the interval is open is fired at once. Values
// arriving while it is closed overwrite a single pending slot that fires
// exactly once when the interval elapses; that trailing call closes the
// interval again. Admission is tracked by a token bucket of size one
// refilled once per interval.
type Throttler[V any] struct {
	clock   Clock
	limiter *rate.Limiter
	fn      func(V)

	mu          sync.Mutex
	pending     V
	hasPending  bool
	timer       Timer
	reservation *rate.Reservation
	gen         uint64
}

// NewThrottler returns a Throttler spacing calls to fn by interval. A
// non-positive interval disables throttling.
func NewThrottler[V any](clock Clock, interval time.Duration, fn func(V)) *Throttler[V] {
	if clock == nil {
		clock = RealClock()
	}
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Throttler[V]{
		clock:   clock,
		limiter: rate.NewLimiter(limit, 1),
		fn:      fn,
	}
}

// Trigger requests a call with v.
func (t *Throttler[V]) Trigger(v V) {
	t.mu.Lock()

	if t.timer != nil {
		t.pending = v
		t.hasPending = true
		t.mu.Unlock()
		return
	}

	now := t.clock.Now()
	if t.limiter.AllowN(now, 1) {
		t.mu.Unlock()
		t.fn(v)
		return
	}

	t.pending = v
	t.hasPending = true
	t.reservation = t.limiter.ReserveN(now, 1)
	t.gen++
	gen := t.gen
	t.timer = t.clock.AfterFunc(t.reservation.DelayFrom(now), func() { t.fireTrailing(gen) })
	t.mu.Unlock()
}

func (t *Throttler[V]) fireTrailing(gen uint64) {
	t.mu.Lock()
	if t.gen != gen || !t.hasPending {
		t.mu.Unlock()
		return
	}
	v := t.pending
	var zero V
	t.pending = zero
	t.hasPending = false
	t.timer = nil
	t.reservation = nil
	t.mu.Unlock()

	t.fn(v)
}

// Cancel clears the pending trailing call, if any, and gives its reserved
// slot back.
func (t *Throttler[V]) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	if t.reservation != nil {
		t.reservation.CancelAt(t.clock.Now())
		t.reservation = nil
	}
	var zero V
	t.pending = zero
	t.hasPending = false
}

// Pending reports whether a trailing call is scheduled.
func (t *Throttler[V]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hasPending
}
