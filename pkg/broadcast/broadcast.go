package broadcast

import (
	"context"
	"errors"
)

var (
	ErrBroadcasterClosed = errors.New("broadcast: broadcaster closed")
	ErrSubscriberClosed  = errors.New("broadcast: subscriber closed")
)

// Message wraps a broadcast payload.
type Message[T any] struct {
	Data T
}

// Broadcaster sends messages to every subscriber.
type Broadcaster[T any] interface {
	Subscribe(ctx context.Context) Subscriber[T]
	Broadcast(ctx context.Context, msg Message[T]) error
	Close() error
}

// Subscriber receives broadcast messages.
type Subscriber[T any] interface {
	Receive(ctx context.Context) <-chan Message[T]
	Close() error
}
