package middleware

import (
	"context"

	"github.com/fieldwork-dev/fieldwork/pkg/event"
)

// Handler processes one form event.
type Handler func(ctx context.Context, evt event.Event) error

// Middleware wraps a Handler with additional behavior.
type Middleware func(Handler) Handler

// Chain applies middlewares to a handler, outermost first.
func Chain(h Handler, mws ...Middleware) Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}
