package event

import "time"

// Handler handles one event.
type Handler func(Event)

// Modified wraps a handler with modifier flags. Modifiers compose; wrapping
// an already-modified handler merges flags and preserves the innermost
// handler.
type Modified struct {
	// Handler is the wrapped handler.
	Handler Handler

	// PreventDefault suppresses the default action for the event.
	PreventDefault bool

	// StopPropagation stops the event from bubbling.
	StopPropagation bool

	// Debounce delays the handler until no event has arrived for the
	// duration.
	Debounce time.Duration
}

// PreventDefault wraps a handler to suppress the event's default action.
func PreventDefault(h any) Modified {
	m := wrap(h)
	m.PreventDefault = true
	return m
}

// StopPropagation wraps a handler to stop event bubbling.
func StopPropagation(h any) Modified {
	m := wrap(h)
	m.StopPropagation = true
	return m
}

// Debounce wraps a handler so it only runs after the duration has passed
// since the last event.
func Debounce(d time.Duration, h any) Modified {
	m := wrap(h)
	m.Debounce = d
	return m
}

// wrap normalizes a Handler or Modified into a Modified.
func wrap(h any) Modified {
	switch v := h.(type) {
	case Modified:
		return v
	case Handler:
		return Modified{Handler: v}
	case func(Event):
		return Modified{Handler: v}
	default:
		return Modified{}
	}
}
