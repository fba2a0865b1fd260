package pagination

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/notify"
	"github.com/dmitrymomot/storefront/model"
)

// Query is what a FetchFunc receives.
type Query[F any] struct {
	Page   int
	Limit  int
	Filter F
}

// Page is one server page.
type Page[T any] struct {
	Items      []T
	Pagination model.Pagination
}

// FetchFunc loads a page.
type FetchFunc[T any, F any] func(ctx context.Context, q Query[F]) (Page[T], error)

// State is a snapshot of a list.
type State[T any, F any] struct {
	Items       []T
	CurrentPage int
	TotalPages  int
	TotalItems  int
	Limit       int
	Loading     bool
	Err         string
	Filter      F
}

// List is a concurrency-safe paginated list.
type List[T any, F comparable] struct {
	mu       sync.Mutex
	state    State[T, F]
	page     int
	limit    int
	filter   F
	gen      uint64
	cancel   context.CancelFunc
	timer    *time.Timer
	toggling bool
	closed   bool

	base       context.Context
	baseCancel context.CancelFunc

	fetch       FetchFunc[T, F]
	scope       func(F) F
	onChange    func(State[T, F])
	debounce    time.Duration
	fallbackKey string
	notifier    notify.Notifier
	logger      *slog.Logger
}

// New creates a list. It does not fetch until asked.
//
// WithFilter, WithScope and OnChange must be instantiated with the list's own
// T and F. New panics when one of them carries another type, so a mismatch
// surfaces the first time the constructor runs.
func New[T any, F comparable](fetch FetchFunc[T, F], opts ...Option) *List[T, F] {
	s := &settings{
		page:        1,
		limit:       DefaultLimit,
		debounce:    DefaultDebounce,
		fallbackKey: DefaultFallbackKey,
		notifier:    notify.Nop{},
		logger:      logger.Discard(),
		component:   "list",
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.page < 1 {
		s.page = 1
	}
	if s.limit < 1 {
		s.limit = DefaultLimit
	}

	base, cancel := context.WithCancel(context.Background())
	l := &List[T, F]{
		page:        s.page,
		limit:       s.limit,
		filter:      typed[F](s.filter, "filter"),
		base:        base,
		baseCancel:  cancel,
		fetch:       fetch,
		scope:       typed[func(F) F](s.scope, "scope"),
		onChange:    typed[func(State[T, F])](s.onChange, "change callback"),
		debounce:    s.debounce,
		fallbackKey: s.fallbackKey,
		notifier:    s.notifier,
		logger:      s.logger.With(logger.Component(s.component)),
	}
	l.state = State[T, F]{
		Items:       []T{},
		CurrentPage: l.page,
		Limit:       l.limit,
		Filter:      l.filter,
	}
	return l
}

// State returns a snapshot.
func (l *List[T, F]) State() State[T, F] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.snapshotLocked()
}

// Fetch loads the current page, filter and limit. Results of fetches started
// earlier are discarded once this one begins.
func (l *List[T, F]) Fetch(ctx context.Context) State[T, F] {
	l.mu.Lock()
	if l.closed {
		defer l.mu.Unlock()
		return l.snapshotLocked()
	}
	l.stopTimerLocked()
	gen, fctx, q := l.beginLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.changed(snap)
	return l.run(ctx, fctx, gen, q)
}

// SetPage moves to page n, keeping filters.
func (l *List[T, F]) SetPage(ctx context.Context, n int) State[T, F] {
	l.mu.Lock()
	l.page = max(n, 1)
	l.mu.Unlock()
	return l.Fetch(ctx)
}

// SetLimit changes the page size, keeping filters and page.
func (l *List[T, F]) SetLimit(ctx context.Context, n int) State[T, F] {
	l.mu.Lock()
	if n < 1 {
		n = DefaultLimit
	}
	l.limit = n
	l.mu.Unlock()
	return l.Fetch(ctx)
}

// SetFilter replaces the filter. An unchanged filter is a no-op; otherwise the
// page resets to 1 and a fetch is scheduled after the debounce window.
func (l *List[T, F]) SetFilter(ctx context.Context, f F) {
	l.mu.Lock()
	if l.closed || f == l.filter {
		l.mu.Unlock()
		return
	}
	l.filter = f
	l.page = 1
	l.state.Filter = f

	if l.debounce <= 0 {
		l.mu.Unlock()
		l.Fetch(ctx)
		return
	}

	l.stopTimerLocked()
	l.timer = time.AfterFunc(l.debounce, func() {
		l.Fetch(l.base)
	})
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.changed(snap)
}

// UpdateFilter applies fn to the current filter and passes the result to SetFilter.
func (l *List[T, F]) UpdateFilter(ctx context.Context, fn func(F) F) {
	l.mu.Lock()
	next := fn(l.filter)
	l.mu.Unlock()
	l.SetFilter(ctx, next)
}

// Toggle flips a filter and fetches immediately. It returns
// ErrToggleInProgress without side effects while another toggle runs.
func (l *List[T, F]) Toggle(ctx context.Context, fn func(F) F) error {
	l.mu.Lock()
	if l.toggling {
		l.mu.Unlock()
		return ErrToggleInProgress
	}
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.toggling = true
	l.filter = fn(l.filter)
	l.page = 1
	l.state.Filter = l.filter
	l.stopTimerLocked()
	gen, fctx, q := l.beginLocked(ctx)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		l.toggling = false
		l.mu.Unlock()
	}()

	l.changed(snap)
	l.run(ctx, fctx, gen, q)
	return nil
}

// TogglePending reports whether a toggle is in flight.
func (l *List[T, F]) TogglePending() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.toggling
}

// Close cancels the debounce timer and any in-flight fetch. Later calls are
// no-ops.
func (l *List[T, F]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return
	}
	l.closed = true
	l.stopTimerLocked()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.baseCancel()
}

func (l *List[T, F]) beginLocked(ctx context.Context) (uint64, context.Context, Query[F]) {
	l.gen++
	if l.cancel != nil {
		l.cancel()
	}
	fctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.state.Loading = true

	filter := l.filter
	if l.scope != nil {
		filter = l.scope(filter)
	}
	return l.gen, fctx, Query[F]{Page: l.page, Limit: l.limit, Filter: filter}
}

func (l *List[T, F]) run(ctx, fctx context.Context, gen uint64, q Query[F]) State[T, F] {
	page, err := l.fetch(fctx, q)

	l.mu.Lock()
	if l.closed || gen != l.gen {
		defer l.mu.Unlock()
		return l.snapshotLocked()
	}
	l.cancel()
	l.cancel = nil
	l.state.Loading = false

	var message string
	switch {
	case err == nil:
		l.state.Items = page.Items
		if l.state.Items == nil {
			l.state.Items = []T{}
		}
		l.state.CurrentPage = page.Pagination.CurrentPage
		l.state.TotalPages = page.Pagination.TotalPages
		l.state.TotalItems = page.Pagination.TotalItems
		l.state.Limit = page.Pagination.Limit
		l.state.Err = ""
	case errors.Is(err, context.Canceled) && ctx.Err() != nil:
		// The caller went away; keep the previous page.
	default:
		message = apiclient.MessageOf(err, l.notifier.T(l.fallbackKey))
		l.state.Items = []T{}
		l.state.Err = message
	}
	snap := l.snapshotLocked()
	l.mu.Unlock()

	if message != "" {
		l.logger.ErrorContext(ctx, "list fetch failed",
			logger.Page(q.Page),
			logger.Count("limit", q.Limit),
			logger.Error(err),
		)
		l.notifier.Notify(ctx, notify.KindError, "list.error.title", message)
	}
	l.changed(snap)
	return snap
}

func (l *List[T, F]) stopTimerLocked() {
	if l.timer != nil {
		l.timer.Stop()
		l.timer = nil
	}
}

func (l *List[T, F]) snapshotLocked() State[T, F] {
	s := l.state
	s.Items = slices.Clone(l.state.Items)
	return s
}

func (l *List[T, F]) changed(s State[T, F]) {
	if l.onChange != nil {
		l.onChange(s)
	}
}
