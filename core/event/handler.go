package event

import (
	"context"
	"fmt"
	"reflect"
)

// HandlerFunc processes events of type T.
type HandlerFunc[T any] func(context.Context, T) error

// Handler processes events with a given name.
type Handler interface {
	EventName() string
	Handle(ctx context.Context, payload any) error
}

// NewHandlerFunc wraps fn; the event name is derived from T.
func NewHandlerFunc[T any](fn HandlerFunc[T]) Handler {
	var zero T
	return &typedHandler[T]{name: nameOf(reflect.TypeOf(&zero).Elem()), fn: fn}
}

type typedHandler[T any] struct {
	name string
	fn   HandlerFunc[T]
}

func (h *typedHandler[T]) EventName() string { return h.name }

func (h *typedHandler[T]) Handle(ctx context.Context, payload any) error {
	typed, ok := payload.(T)
	if !ok {
		return fmt.Errorf("event %s: unexpected payload type %T", h.name, payload)
	}
	return h.fn(ctx, typed)
}

// Name returns the event name for a payload value.
func Name(payload any) string {
	return nameOf(reflect.TypeOf(payload))
}

func nameOf(t reflect.Type) string {
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
