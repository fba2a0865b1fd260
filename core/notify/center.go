package notify

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storefront/core/i18n"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/pkg/broadcast"
)

const (
	// DefaultTTL is how long a notification stays active.
	DefaultTTL = 3 * time.Second

	// Namespace is the i18n namespace notification keys live in.
	Namespace = "notify"

	defaultBufferSize = 32
)

// Center stores active notifications and fans them out to subscribers.
type Center struct {
	mu     sync.Mutex
	active []Notification
	timers map[string]*time.Timer
	closed bool

	ttl         time.Duration
	language    string
	catalog     *i18n.I18n
	translator  *i18n.Translator
	bufferSize  int
	broadcaster *broadcast.MemoryBroadcaster[Notification]
	logger      *slog.Logger
}

// Option configures a Center.
type Option func(*Center)

// WithTTL sets the auto-dismiss delay. Non-positive values keep notifications
// until dismissed.
func WithTTL(ttl time.Duration) Option {
	return func(c *Center) {
		c.ttl = ttl
	}
}

// WithLanguage selects the catalog language.
func WithLanguage(lang string) Option {
	return func(c *Center) {
		c.language = lang
	}
}

// WithCatalog replaces the built-in catalog.
func WithCatalog(catalog *i18n.I18n) Option {
	return func(c *Center) {
		if catalog != nil {
			c.catalog = catalog
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Center) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithBufferSize sets the per-subscriber buffer.
func WithBufferSize(n int) Option {
	return func(c *Center) {
		c.bufferSize = n
	}
}

// NewCenter creates a notification center. Without WithCatalog the built-in
// Spanish/English catalog is used.
func NewCenter(opts ...Option) (*Center, error) {
	c := &Center{
		timers:     make(map[string]*time.Timer),
		ttl:        DefaultTTL,
		bufferSize: defaultBufferSize,
		logger:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.catalog == nil {
		catalog, err := DefaultCatalog()
		if err != nil {
			return nil, err
		}
		c.catalog = catalog
	}
	if c.language == "" {
		c.language = c.catalog.DefaultLanguage()
	}
	c.language = i18n.MatchLanguage(c.language, c.catalog.Languages())
	c.translator = i18n.NewTranslator(c.catalog, c.language, Namespace)
	c.broadcaster = broadcast.NewMemoryBroadcaster[Notification](c.bufferSize)

	return c, nil
}

// Notify resolves title and description, queues the notification and
// broadcasts it. After Close the notification is returned but not queued.
func (c *Center) Notify(ctx context.Context, kind Kind, title, description string, placeholders ...i18n.M) Notification {
	now := time.Now()
	n := Notification{
		ID:        uuid.NewString(),
		Kind:      kind,
		Title:     c.translator.T(title, placeholders...),
		CreatedAt: now,
	}
	if description != "" {
		n.Description = c.translator.T(description, placeholders...)
	}
	if c.ttl > 0 {
		n.ExpiresAt = now.Add(c.ttl)
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return n
	}
	c.active = append(c.active, n)
	if c.ttl > 0 {
		id := n.ID
		c.timers[id] = time.AfterFunc(c.ttl, func() { c.Dismiss(id) })
	}
	c.mu.Unlock()

	c.logger.DebugContext(ctx, "notification queued",
		slog.String("kind", string(kind)),
		slog.String("title", n.Title),
	)

	if err := c.broadcaster.Broadcast(context.WithoutCancel(ctx), broadcast.Message[Notification]{Data: n}); err != nil {
		c.logger.DebugContext(ctx, "notification broadcast skipped", logger.Error(err))
	}
	return n
}

// Dismiss removes a notification. It reports whether it was active.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}
	idx := slices.IndexFunc(c.active, func(n Notification) bool { return n.ID == id })
	if idx < 0 {
		return false
	}
	c.active = slices.Delete(c.active, idx, idx+1)
	return true
}

// Active returns the queued notifications, oldest first.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.active)
}

// Subscribe streams notifications queued after the call.
func (c *Center) Subscribe(ctx context.Context) broadcast.Subscriber[Notification] {
	return c.broadcaster.Subscribe(ctx)
}

// T resolves a catalog key in the center's language.
func (c *Center) T(key string, placeholders ...i18n.M) string {
	return c.translator.T(key, placeholders...)
}

// Language returns the resolved catalog language.
func (c *Center) Language() string {
	return c.language
}

// Close stops pending timers and ends subscriptions.
func (c *Center) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
	c.mu.Unlock()

	return c.broadcaster.Close()
}
