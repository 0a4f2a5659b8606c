// Package reactive provides the small reactive primitives used by the form
// engine: a watchable value container (Signal) and a cancellable one-shot
// timer (Timer).
//
// Signals carry UI-facing state such as indicator visibility. Watchers run
// synchronously on the goroutine that performed the change, which keeps the
// single-threaded event-loop model intact: the only asynchronous entry point
// is Timer, and its callback is cancellable before it fires.
package reactive
