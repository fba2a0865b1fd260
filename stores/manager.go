package stores

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"strconv"
	"sync"

	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/core/i18n"
	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/notify"
	"github.com/dmitrymomot/storefront/model"
)

const (
	// SelectedStoreKey is the persisted key of the selected store id.
	SelectedStoreKey = "selectedStoreId"

	fetchLimit = 10
)

// State is a snapshot of the store selection.
type State struct {
	SelectedStoreID *int64
	Stores          []model.Store
	Loading         bool
	Err             string
}

// Manager tracks the available stores and the selected one.
type Manager struct {
	mu     sync.Mutex
	state  State
	gen    uint64
	closed bool

	api      Lister
	store    kv.Store
	notifier notify.Notifier
	logger   *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithNotifier sets where fetch and persistence failures are reported.
func WithNotifier(n notify.Notifier) Option {
	return func(m *Manager) {
		if n != nil {
			m.notifier = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a manager. It reports Loading until the first Fetch
// settles; call Fetch to load stores.
func NewManager(api Lister, store kv.Store, opts ...Option) *Manager {
	m := &Manager{
		state:    State{Stores: []model.Store{}, Loading: true},
		api:      api,
		store:    store,
		notifier: notify.Nop{},
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logger.Component("stores"))
	return m
}

// Fetch loads the first page of active stores and reconciles the selection
// with the persisted id.
func (m *Manager) Fetch(ctx context.Context) State {
	m.mu.Lock()
	if m.closed {
		defer m.mu.Unlock()
		return m.snapshotLocked()
	}
	m.gen++
	gen := m.gen
	m.state.Loading = true
	m.state.Err = ""
	m.mu.Unlock()

	res, err := m.api.List(ctx, ListParams{Page: 1, Limit: fetchLimit})
	if err != nil {
		return m.fail(ctx, gen, err)
	}

	persisted, hasPersisted := m.readPersisted(ctx)

	var selected *int64
	switch {
	case hasPersisted && slices.ContainsFunc(res.Stores, func(s model.Store) bool { return s.ID == persisted }):
		selected = &persisted
	case len(res.Stores) > 0:
		first := res.Stores[0].ID
		selected = &first
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || gen != m.gen {
		return m.snapshotLocked()
	}
	m.state.Stores = res.Stores
	if m.state.Stores == nil {
		m.state.Stores = []model.Store{}
	}
	m.state.Loading = false
	if selected != nil {
		m.state.SelectedStoreID = selected
		if !hasPersisted || persisted != *selected {
			m.persistLocked(ctx, selected)
		}
	}
	return m.snapshotLocked()
}

func (m *Manager) fail(ctx context.Context, gen uint64, err error) State {
	message := apiclient.MessageOf(err, m.notifier.T("list.fallback.stores"))

	m.mu.Lock()
	if m.closed || gen != m.gen {
		defer m.mu.Unlock()
		return m.snapshotLocked()
	}
	m.state.Loading = false
	m.state.Err = message
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.logger.ErrorContext(ctx, "failed to fetch stores", logger.Error(err))
	m.notifier.Notify(ctx, notify.KindError, "list.error.title", "stores.error.load", i18n.M{"message": message})
	return snap
}

func (m *Manager) readPersisted(ctx context.Context) (int64, bool) {
	raw, err := m.store.Get(ctx, SelectedStoreKey)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			m.logger.ErrorContext(ctx, "failed to read selected store", logger.Error(err))
		}
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		m.logger.WarnContext(ctx, "ignoring malformed selected store", logger.Key("value", raw))
		return 0, false
	}
	return id, true
}

// Select changes the selected store and persists it. A nil id clears the
// selection. Persistence failures are notified but keep the new selection.
func (m *Manager) Select(ctx context.Context, id *int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return
	}
	if id != nil {
		v := *id
		id = &v
	}
	m.state.SelectedStoreID = id
	m.persistLocked(ctx, id)
}

func (m *Manager) persistLocked(ctx context.Context, id *int64) {
	var err error
	if id == nil {
		err = m.store.Delete(ctx, SelectedStoreKey)
	} else {
		err = m.store.Set(ctx, SelectedStoreKey, strconv.FormatInt(*id, 10))
	}
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to persist selected store", logger.Error(err))
		m.notifier.Notify(ctx, notify.KindError, "stores.error.title", "stores.error.save")
		return
	}
	if id != nil {
		m.logger.DebugContext(ctx, "store selected", logger.StoreID(*id))
	}
}

// SelectedStoreID returns the selected store id.
func (m *Manager) SelectedStoreID() (int64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.SelectedStoreID == nil {
		return 0, false
	}
	return *m.state.SelectedStoreID, true
}

// State returns a snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// Close makes later calls no-ops.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

func (m *Manager) snapshotLocked() State {
	s := m.state
	s.Stores = slices.Clone(m.state.Stores)
	if s.SelectedStoreID != nil {
		v := *s.SelectedStoreID
		s.SelectedStoreID = &v
	}
	return s
}
