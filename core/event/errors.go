package event

import "errors"

var (
	// ErrNilHandler is returned when a nil handler is registered.
	ErrNilHandler = errors.New("event: handler is nil")

	// ErrNilEvent is returned when Publish receives a nil payload.
	ErrNilEvent = errors.New("event: payload is nil")

	// ErrHandlerPanic wraps a recovered handler panic.
	ErrHandlerPanic = errors.New("event: handler panicked")
)
