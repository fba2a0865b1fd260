package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/auth"
	"github.com/dmitrymomot/storefront/core/event"
	"github.com/dmitrymomot/storefront/core/i18n"
	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/notify"
	"github.com/dmitrymomot/storefront/model"
)

// Manager owns the cart of the current user.
type Manager struct {
	mu      sync.Mutex
	items   []Item
	userID  int64
	authed  bool
	loading bool
	// loaded is closed when the pending load settles.
	loaded chan struct{}
	gen    uint64
	closed bool

	store         kv.Store
	app           string
	purgeOnLogout bool
	notifier      notify.Notifier
	logger        *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithNotifier sets where user-facing messages go.
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

// WithAppName sets the key namespace. Defaults to DefaultAppName.
func WithAppName(name string) Option {
	return func(m *Manager) {
		if name != "" {
			m.app = name
		}
	}
}

// WithPurgeOnLogout removes the previous user's stored cart when the session
// ends. By default it is kept and restored on the next sign-in.
func WithPurgeOnLogout() Option {
	return func(m *Manager) {
		m.purgeOnLogout = true
	}
}

// NewManager creates an empty cart that stays loading until the first
// settled session arrives through Sync.
func NewManager(store kv.Store, opts ...Option) *Manager {
	m := &Manager{
		items:    []Item{},
		loading:  true,
		loaded:   make(chan struct{}),
		store:    store,
		app:      DefaultAppName,
		notifier: notify.Nop{},
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logger.Component("cart"))
	return m
}

// EventHandler adapts Sync to auth.StateChanged events.
func (m *Manager) EventHandler() event.Handler {
	return event.NewHandlerFunc(func(ctx context.Context, e auth.StateChanged) error {
		m.Sync(ctx, e.State)
		return nil
	})
}

// Sync reacts to a session snapshot. Snapshots still loading are ignored.
// A signed-out session empties the cart in memory; a new user loads that
// user's partition. Loads superseded by a later Sync are discarded.
func (m *Manager) Sync(ctx context.Context, st auth.State) {
	if st.Loading {
		return
	}

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}

	if !st.IsAuthenticated() {
		prev := m.userID
		m.gen++
		m.items = []Item{}
		m.userID = 0
		m.authed = false
		m.settleLocked()
		if m.purgeOnLogout && prev != 0 {
			if err := m.store.Delete(ctx, StorageKey(m.app, prev)); err != nil {
				m.logger.ErrorContext(ctx, "failed to purge cart", logger.UserID(prev), logger.Error(err))
			}
		}
		m.mu.Unlock()
		return
	}

	userID := st.User.ID
	if m.authed && m.userID == userID {
		m.mu.Unlock()
		return
	}

	m.gen++
	gen := m.gen
	m.settleLocked()
	m.items = []Item{}
	m.userID = userID
	m.authed = true
	m.loading = true
	m.loaded = make(chan struct{})
	m.mu.Unlock()

	items, err := m.load(ctx, userID)

	m.mu.Lock()
	if m.closed || gen != m.gen {
		m.mu.Unlock()
		return
	}
	m.items = items
	m.settleLocked()
	m.mu.Unlock()

	if err != nil {
		m.logger.ErrorContext(ctx, "failed to load cart", logger.UserID(userID), logger.Error(err))
		m.notifier.Notify(ctx, notify.KindError, "cart.error.title", "cart.error.load")
		return
	}
	m.logger.DebugContext(ctx, "cart loaded", logger.UserID(userID), logger.Count("items", len(items)))
}

func (m *Manager) load(ctx context.Context, userID int64) ([]Item, error) {
	raw, err := m.store.Get(ctx, StorageKey(m.app, userID))
	if errors.Is(err, kv.ErrNotFound) {
		return []Item{}, nil
	}
	if err != nil {
		return []Item{}, err
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []Item{}, fmt.Errorf("decode cart: %w", err)
	}
	return normalize(items), nil
}

// Add puts quantity units of product in the cart, accumulating onto an
// existing line for the same product.
func (m *Manager) Add(ctx context.Context, product model.Product, quantity int) error {
	ok, err := m.begin(ctx, "cart.denied.add")
	if !ok {
		return err
	}
	if quantity <= 0 {
		m.mu.Unlock()
		m.notifier.Notify(ctx, notify.KindError, "cart.error.title", "cart.error.quantity")
		return ErrInvalidQuantity
	}

	key := "cart.added"
	if idx := m.indexLocked(product.ID); idx >= 0 {
		m.items[idx].Quantity += quantity
		key = "cart.updated"
	} else {
		m.items = append(m.items, Item{Product: product, Quantity: quantity})
	}
	saveErr := m.persistLocked(ctx)
	m.mu.Unlock()

	m.notifySaved(ctx, saveErr)
	m.notifier.Notify(ctx, notify.KindSuccess, key+".title", key+".description", i18n.M{"name": product.Name})
	return nil
}

// Remove drops the line for productID if present.
func (m *Manager) Remove(ctx context.Context, productID int64) error {
	ok, err := m.begin(ctx, "cart.denied.modify")
	if !ok {
		return err
	}

	var saveErr error
	if idx := m.indexLocked(productID); idx >= 0 {
		m.items = slices.Delete(m.items, idx, idx+1)
		saveErr = m.persistLocked(ctx)
	}
	m.mu.Unlock()

	m.notifySaved(ctx, saveErr)
	m.notifier.Notify(ctx, notify.KindInfo, "cart.removed.title", "cart.removed.description")
	return nil
}

// UpdateQuantity sets the quantity of a line. Non-positive quantities remove
// it; unknown products are ignored.
func (m *Manager) UpdateQuantity(ctx context.Context, productID int64, quantity int) error {
	if quantity <= 0 {
		return m.Remove(ctx, productID)
	}
	ok, err := m.begin(ctx, "cart.denied.modify")
	if !ok {
		return err
	}

	idx := m.indexLocked(productID)
	if idx < 0 {
		m.mu.Unlock()
		return nil
	}
	m.items[idx].Quantity = quantity
	saveErr := m.persistLocked(ctx)
	m.mu.Unlock()

	m.notifySaved(ctx, saveErr)
	m.notifier.Notify(ctx, notify.KindInfo, "cart.quantity.title", "cart.quantity.description")
	return nil
}

// Clear empties the cart and removes the user's stored partition.
func (m *Manager) Clear(ctx context.Context) error {
	ok, err := m.begin(ctx, "cart.denied.clear")
	if !ok {
		return err
	}

	m.items = []Item{}
	delErr := m.store.Delete(ctx, StorageKey(m.app, m.userID))
	if delErr != nil {
		m.logger.ErrorContext(ctx, "failed to remove stored cart", logger.UserID(m.userID), logger.Error(delErr))
	}
	m.mu.Unlock()

	m.notifySaved(ctx, delErr)
	m.notifier.Notify(ctx, notify.KindInfo, "cart.cleared.title", "cart.cleared.description")
	return nil
}

// Items returns a copy of the cart lines in insertion order.
func (m *Manager) Items() []Item {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.items)
}

// TotalItems returns the sum of quantities.
func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, it := range m.items {
		total += it.Quantity
	}
	return total
}

// TotalAmount returns the sum of price × quantity.
func (m *Manager) TotalAmount() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := decimal.Zero
	for _, it := range m.items {
		total = total.Add(it.Subtotal())
	}
	return total
}

// Loading reports whether the cart is waiting for a session or a load.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// Close makes every later call a no-op.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	m.settleLocked()
}

// begin acquires the lock for a mutation once the cart is settled. It
// returns with m.mu held only when ok is true.
func (m *Manager) begin(ctx context.Context, deniedKey string) (ok bool, err error) {
	for {
		m.mu.Lock()
		if m.closed {
			m.mu.Unlock()
			return false, nil
		}
		if !m.authed {
			m.mu.Unlock()
			m.notifier.Notify(ctx, notify.KindError, "cart.denied.title", deniedKey)
			return false, ErrNotAuthenticated
		}
		if !m.loading {
			return true, nil
		}
		wait := m.loaded
		m.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return false, ctx.Err()
		}
	}
}

func (m *Manager) settleLocked() {
	m.loading = false
	if m.loaded != nil {
		close(m.loaded)
		m.loaded = nil
	}
}

func (m *Manager) indexLocked(productID int64) int {
	return slices.IndexFunc(m.items, func(it Item) bool { return it.Product.ID == productID })
}

func (m *Manager) persistLocked(ctx context.Context) error {
	data, err := json.Marshal(m.items)
	if err == nil {
		err = m.store.Set(ctx, StorageKey(m.app, m.userID), string(data))
	}
	if err != nil {
		m.logger.ErrorContext(ctx, "failed to save cart", logger.UserID(m.userID), logger.Error(err))
	}
	return err
}

func (m *Manager) notifySaved(ctx context.Context, err error) {
	if err != nil {
		m.notifier.Notify(ctx, notify.KindError, "cart.error.title", "cart.error.save")
	}
}
