// Package event models the DOM event boundary: blur, input and submit
// events addressed to a form, handler modifiers (PreventDefault,
// StopPropagation, Debounce), and a Binder that routes events to per-field
// and form-level handlers.
package event
