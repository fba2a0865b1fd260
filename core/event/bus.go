package event

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/storefront/core/logger"
)

// Bus dispatches events synchronously to registered handlers.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
	logger   *slog.Logger
}

// Option configures a Bus.
type Option func(*Bus)

// WithLogger sets the logger used to report handler failures.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bus) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBus creates an empty bus.
func NewBus(opts ...Option) *Bus {
	b := &Bus{
		handlers: make(map[string][]Handler),
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Subscribe registers handlers.
func (b *Bus) Subscribe(handlers ...Handler) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, h := range handlers {
		if h == nil {
			return ErrNilHandler
		}
		b.handlers[h.EventName()] = append(b.handlers[h.EventName()], h)
	}
	return nil
}

// Publish runs every handler for the payload's type and joins their errors.
// Events without handlers are dropped.
func (b *Bus) Publish(ctx context.Context, payload any) error {
	if payload == nil {
		return ErrNilEvent
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	name := Name(payload)

	b.mu.RLock()
	handlers := append([]Handler(nil), b.handlers[name]...)
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := safeHandle(ctx, h, payload); err != nil {
			b.logger.ErrorContext(ctx, "event handler failed",
				logger.Event(name),
				logger.Error(err),
			)
			errs = append(errs, fmt.Errorf("handler for %s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

func safeHandle(ctx context.Context, h Handler, payload any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrHandlerPanic, r)
		}
	}()
	return h.Handle(ctx, payload)
}
