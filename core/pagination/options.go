package pagination

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dmitrymomot/storefront/core/notify"
)

const (
	DefaultLimit    = 10
	DefaultDebounce = 300 * time.Millisecond

	// DefaultFallbackKey is the message shown when a failure carries none.
	DefaultFallbackKey = "list.fallback.generic"
)

type settings struct {
	page        int
	limit       int
	debounce    time.Duration
	fallbackKey string
	notifier    notify.Notifier
	logger      *slog.Logger
	component   string
	filter      any
	scope       any
	onChange    any
}

// Option configures a List.
type Option func(*settings)

// WithPage sets the initial page.
func WithPage(n int) Option {
	return func(s *settings) {
		s.page = n
	}
}

// WithLimit sets the initial page size.
func WithLimit(n int) Option {
	return func(s *settings) {
		s.limit = n
	}
}

// WithDebounce sets the window that coalesces filter-driven fetches.
// Zero fetches synchronously.
func WithDebounce(d time.Duration) Option {
	return func(s *settings) {
		s.debounce = d
	}
}

// WithFallbackMessage sets the catalog key used when a failure has no
// server message.
func WithFallbackMessage(key string) Option {
	return func(s *settings) {
		s.fallbackKey = key
	}
}

// WithNotifier sets where failure notifications go.
func WithNotifier(n notify.Notifier) Option {
	return func(s *settings) {
		if n != nil {
			s.notifier = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithComponent names the list in log records.
func WithComponent(name string) Option {
	return func(s *settings) {
		s.component = name
	}
}

// WithFilter sets the initial filter. F must match the list's filter type;
// New panics otherwise.
func WithFilter[F comparable](f F) Option {
	return func(s *settings) {
		s.filter = f
	}
}

// WithScope registers a function applied to the filter at fetch time, such as
// restricting a customer to their own records. It never changes State.Filter.
// F must match the list's filter type; New panics otherwise.
func WithScope[F comparable](fn func(F) F) Option {
	return func(s *settings) {
		s.scope = fn
	}
}

// OnChange registers a callback invoked after every state transition.
// T and F must match the list's; New panics otherwise.
func OnChange[T any, F comparable](fn func(State[T, F])) Option {
	return func(s *settings) {
		s.onChange = fn
	}
}

func typed[V any](v any, name string) V {
	var zero V
	if v == nil {
		return zero
	}
	out, ok := v.(V)
	if !ok {
		panic(fmt.Sprintf("pagination: %s has type %T, want %T", name, v, zero))
	}
	return out
}
