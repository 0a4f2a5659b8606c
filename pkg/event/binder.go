package event

import (
	"sync"

	"github.com/fieldwork-dev/fieldwork/pkg/reactive"
)

// Binder routes events to registered handlers. Handlers are registered per
// target (a field name, or the empty string for the form itself) and event
// type. Field-level handlers run before form-level ones; StopPropagation on
// a field-level handler suppresses the form-level pass.
type Binder struct {
	mu       sync.Mutex
	bindings map[bindingKey][]*binding
}

type bindingKey struct {
	target string
	typ    Type
}

type binding struct {
	mod Modified
	// timer implements debounce for this binding.
	timer *reactive.Timer
}

// Result reports what happened during a dispatch.
type Result struct {
	// Handled is true if at least one handler matched.
	Handled bool

	// PreventDefault is true if any matched handler suppresses the
	// default action.
	PreventDefault bool
}

// NewBinder creates an empty binder.
func NewBinder() *Binder {
	return &Binder{bindings: make(map[bindingKey][]*binding)}
}

// On registers a handler for the target and event type. The handler may be
// a Handler, a func(Event), or a Modified wrapper.
func (b *Binder) On(target string, t Type, h any) {
	m := wrap(h)
	if m.Handler == nil {
		return
	}
	key := bindingKey{target: target, typ: t}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.bindings[key] = append(b.bindings[key], &binding{
		mod:   m,
		timer: reactive.NewTimer(),
	})
}

// Dispatch routes the event to its field-level handlers, then to form-level
// handlers unless propagation was stopped.
func (b *Binder) Dispatch(evt Event) Result {
	var res Result

	stop := b.run(bindingKey{target: evt.Field, typ: evt.Type}, evt, &res)
	if evt.Field != "" && !stop {
		b.run(bindingKey{target: "", typ: evt.Type}, evt, &res)
	}
	return res
}

// run invokes all handlers for the key and reports whether propagation
// should stop.
func (b *Binder) run(key bindingKey, evt Event, res *Result) bool {
	b.mu.Lock()
	bindings := make([]*binding, len(b.bindings[key]))
	copy(bindings, b.bindings[key])
	b.mu.Unlock()

	stop := false
	for _, bd := range bindings {
		res.Handled = true
		if bd.mod.PreventDefault {
			res.PreventDefault = true
		}
		if bd.mod.StopPropagation {
			stop = true
		}

		if bd.mod.Debounce > 0 {
			e := evt
			h := bd.mod.Handler
			bd.timer.Schedule(bd.mod.Debounce, func() { h(e) })
			continue
		}
		bd.mod.Handler(evt)
	}
	return stop
}
