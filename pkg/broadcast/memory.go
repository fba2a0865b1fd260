package broadcast

import (
	"context"
	"sync"
)

// MemoryBroadcaster is an in-process Broadcaster.
type MemoryBroadcaster[T any] struct {
	mu          sync.RWMutex
	subscribers map[*memorySubscriber[T]]struct{}
	bufferSize  int
	closed      bool
}

// NewMemoryBroadcaster creates a broadcaster whose subscribers buffer up to
// bufferSize messages. Non-positive sizes are raised to 1.
func NewMemoryBroadcaster[T any](bufferSize int) *MemoryBroadcaster[T] {
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &MemoryBroadcaster[T]{
		subscribers: make(map[*memorySubscriber[T]]struct{}),
		bufferSize:  bufferSize,
	}
}

// Subscribe registers a subscriber that lives until ctx is done or it is closed.
func (b *MemoryBroadcaster[T]) Subscribe(ctx context.Context) Subscriber[T] {
	sub := &memorySubscriber[T]{
		ch:     make(chan Message[T], b.bufferSize),
		done:   make(chan struct{}),
		parent: b,
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		sub.closeChannel()
		return sub
	}
	b.subscribers[sub] = struct{}{}
	b.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			_ = sub.Close()
		case <-sub.done:
		}
	}()

	return sub
}

// Broadcast delivers msg to every subscriber without blocking.
func (b *MemoryBroadcaster[T]) Broadcast(ctx context.Context, msg Message[T]) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return ErrBroadcasterClosed
	}
	for sub := range b.subscribers {
		sub.deliver(msg)
	}
	return nil
}

// SubscriberCount returns the number of active subscribers.
func (b *MemoryBroadcaster[T]) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}

// Close ends every subscription. It is safe to call more than once.
func (b *MemoryBroadcaster[T]) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true
	subs := b.subscribers
	b.subscribers = make(map[*memorySubscriber[T]]struct{})
	b.mu.Unlock()

	for sub := range subs {
		sub.closeChannel()
	}
	return nil
}

func (b *MemoryBroadcaster[T]) remove(sub *memorySubscriber[T]) {
	b.mu.Lock()
	delete(b.subscribers, sub)
	b.mu.Unlock()
}

type memorySubscriber[T any] struct {
	mu     sync.Mutex
	ch     chan Message[T]
	done   chan struct{}
	closed bool
	parent *MemoryBroadcaster[T]
}

// Receive returns the subscriber's channel. It is closed when the
// subscription ends.
func (s *memorySubscriber[T]) Receive(context.Context) <-chan Message[T] {
	return s.ch
}

func (s *memorySubscriber[T]) Close() error {
	s.parent.remove(s)
	s.closeChannel()
	return nil
}

func (s *memorySubscriber[T]) deliver(msg Message[T]) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	select {
	case s.ch <- msg:
	default:
	}
}

func (s *memorySubscriber[T]) closeChannel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
		close(s.done)
	}
}
