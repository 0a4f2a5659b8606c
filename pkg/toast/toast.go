package toast

import (
	"time"

	"github.com/fieldwork-dev/fieldwork/pkg/reactive"
)

// DefaultHideDelay is how long an indicator stays visible after Show.
const DefaultHideDelay = 5000 * time.Millisecond

// Indicator is a transient, auto-hiding notification.
//
// Once shown it stays visible for at most the configured delay, then hides
// itself. The pending hide is owned by the indicator and cancelled
// deterministically: Hide (or a new Show) always wins over a scheduled hide.
type Indicator struct {
	visible *reactive.Signal[bool]
	timer   *reactive.Timer
	delay   time.Duration
}

// New creates a hidden indicator with the given auto-hide delay.
// A non-positive delay falls back to DefaultHideDelay.
func New(delay time.Duration) *Indicator {
	if delay <= 0 {
		delay = DefaultHideDelay
	}
	return &Indicator{
		visible: reactive.NewSignal(false),
		timer:   reactive.NewTimer(),
		delay:   delay,
	}
}

// Show makes the indicator visible and schedules it to hide after the
// delay. Showing again restarts the clock.
func (i *Indicator) Show() {
	i.visible.Set(true)
	i.timer.Schedule(i.delay, func() {
		i.visible.Set(false)
	})
}

// Hide hides the indicator immediately and cancels any pending auto-hide.
func (i *Indicator) Hide() {
	i.timer.Stop()
	i.visible.Set(false)
}

// Visible reports whether the indicator is currently shown.
func (i *Indicator) Visible() bool {
	return i.visible.Get()
}

// Watch registers a function called when visibility changes.
// It returns an unsubscribe function.
func (i *Indicator) Watch(fn func(visible bool)) func() {
	return i.visible.Watch(fn)
}
