package reactive

import (
	"sync"
	"time"
)

// Timer is a cancellable one-shot timer.
// Schedule replaces any pending callback, so at most one callback is ever
// outstanding. Stop cancels deterministically: after Stop returns, a pending
// callback that has not started will never run.
type Timer struct {
	mu    sync.Mutex
	timer *time.Timer
	// gen invalidates callbacks from earlier Schedule calls.
	gen uint64
}

// NewTimer creates an idle timer.
func NewTimer() *Timer {
	return &Timer{}
}

// Schedule cancels any pending callback and schedules fn to run after d.
func (t *Timer) Schedule(d time.Duration, fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen

	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		stale := gen != t.gen
		if !stale {
			t.timer = nil
		}
		t.mu.Unlock()

		if !stale {
			fn()
		}
	})
}

// Stop cancels the pending callback, if any.
// It reports whether a callback was pending.
func (t *Timer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.gen++
	if t.timer == nil {
		return false
	}
	pending := t.timer.Stop()
	t.timer = nil
	return pending
}

// Pending reports whether a callback is scheduled and has not yet run.
func (t *Timer) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.timer != nil
}
