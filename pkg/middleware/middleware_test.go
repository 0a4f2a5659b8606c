package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/fieldwork-dev/fieldwork/pkg/event"
)

func TestChainOrder(t *testing.T) {
	var order []string

	tag := func(name string) Middleware {
		return func(next Handler) Handler {
			return func(ctx context.Context, evt event.Event) error {
				order = append(order, name+":before")
				err := next(ctx, evt)
				order = append(order, name+":after")
				return err
			}
		}
	}

	h := Chain(func(ctx context.Context, evt event.Event) error {
		order = append(order, "handler")
		return nil
	}, tag("outer"), tag("inner"))

	if err := h(context.Background(), event.Event{}); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := []string{"outer:before", "inner:before", "handler", "inner:after", "outer:after"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, order)
		}
	}
}

func TestChainPropagatesError(t *testing.T) {
	sentinel := errors.New("boom")
	h := Chain(func(ctx context.Context, evt event.Event) error {
		return sentinel
	})

	if err := h(context.Background(), event.Event{}); !errors.Is(err, sentinel) {
		t.Errorf("Expected sentinel error, got: %v", err)
	}
}

func TestChainEmpty(t *testing.T) {
	called := false
	h := Chain(func(ctx context.Context, evt event.Event) error {
		called = true
		return nil
	})

	h(context.Background(), event.Event{})
	if !called {
		t.Error("Expected handler called with no middleware")
	}
}
