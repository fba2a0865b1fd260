package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/notify"
	"github.com/dmitrymomot/storefront/core/sanitizer"
	"github.com/dmitrymomot/storefront/core/validator"
	"github.com/dmitrymomot/storefront/model"
)

// Publisher delivers StateChanged events. *event.Bus satisfies it.
type Publisher interface {
	Publish(ctx context.Context, payload any) error
}

// Manager owns the session state machine.
type Manager struct {
	// transition serializes state changes with their publication so
	// subscribers observe them in order.
	transition sync.Mutex

	mu    sync.RWMutex
	state State

	ready     chan struct{}
	readyOnce sync.Once

	api      API
	store    kv.Store
	notifier notify.Notifier
	events   Publisher
	logger   *slog.Logger
	now      func() time.Time
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

// WithPublisher sets the event sink for StateChanged.
func WithPublisher(p Publisher) Option {
	return func(m *Manager) {
		m.events = p
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

// WithClock overrides the time source used for token expiry.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewManager creates a manager in the loading state. Call Bootstrap to
// restore a persisted session.
func NewManager(api API, store kv.Store, opts ...Option) *Manager {
	m := &Manager{
		state:    State{Loading: true},
		ready:    make(chan struct{}),
		api:      api,
		store:    store,
		notifier: notify.Nop{},
		logger:   logger.Discard(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.With(logger.Component("auth"))
	return m
}

// Bootstrap restores the session from the persisted token. It always ends
// with Loading false and Ready closed; failures leave the session signed out.
func (m *Manager) Bootstrap(ctx context.Context) {
	defer m.readyOnce.Do(func() { close(m.ready) })

	token, err := m.store.Get(ctx, TokenKey)
	switch {
	case errors.Is(err, kv.ErrNotFound) || (err == nil && token == ""):
		m.apply(ctx, func(s *State) { *s = State{} })
		return
	case err != nil:
		m.logger.ErrorContext(ctx, "failed to read session token", logger.Error(err))
		m.apply(ctx, func(s *State) { *s = State{} })
		return
	}

	if tokenExpired(token, m.now()) {
		m.logger.InfoContext(ctx, "persisted session token expired")
		m.dropInvalidSession(ctx)
		return
	}

	user, err := m.api.Me(ctx)
	if err != nil {
		m.logger.WarnContext(ctx, "session check failed", logger.Error(err))
		m.dropInvalidSession(ctx)
		return
	}

	m.apply(ctx, func(s *State) {
		*s = State{Token: token, User: &user}
	})
	m.logger.DebugContext(ctx, "session restored", logger.UserID(user.ID))
}

func (m *Manager) dropInvalidSession(ctx context.Context) {
	if err := m.store.Delete(ctx, TokenKey); err != nil {
		m.logger.ErrorContext(ctx, "failed to remove session token", logger.Error(err))
	}
	m.apply(ctx, func(s *State) { *s = State{} })
	m.notifier.Notify(ctx, notify.KindWarning, "auth.session_invalid.title", "auth.session_invalid.description")
}

// Login signs in and persists the returned token. Failures are notified and
// returned; malformed credentials are rejected without a request.
func (m *Manager) Login(ctx context.Context, creds model.LoginCredentials) error {
	if err := prepare(&creds); err != nil {
		return m.reject(ctx, "login", err)
	}
	return m.authenticate(ctx, "login", func(ctx context.Context) (Session, error) {
		return m.api.Login(ctx, creds)
	})
}

// Register creates an account and signs it in. Failures are notified and
// returned.
func (m *Manager) Register(ctx context.Context, data model.RegisterData) error {
	if err := prepare(&data); err != nil {
		return m.reject(ctx, "register", err)
	}
	return m.authenticate(ctx, "register", func(ctx context.Context) (Session, error) {
		return m.api.Register(ctx, data)
	})
}

func (m *Manager) authenticate(ctx context.Context, action string, call func(context.Context) (Session, error)) error {
	m.apply(ctx, func(s *State) { s.Loading = true })

	sess, err := call(ctx)
	if err == nil {
		if perr := m.store.Set(ctx, TokenKey, sess.Token); perr != nil {
			err = fmt.Errorf("%w: %w", ErrPersistToken, perr)
		}
	}
	if err != nil {
		m.apply(ctx, func(s *State) { s.Loading = false })
		m.logger.ErrorContext(ctx, "authentication failed", logger.Action(action), logger.Error(err))

		prefix := "auth." + action + "_failed."
		m.notifier.Notify(ctx, notify.KindError, prefix+"title",
			apiclient.MessageOf(err, m.notifier.T(prefix+"description")))
		return err
	}

	user := sess.User
	m.apply(ctx, func(s *State) {
		*s = State{Token: sess.Token, User: &user}
	})
	m.logger.InfoContext(ctx, "signed in", logger.Action(action), logger.UserID(user.ID))
	m.notifier.Notify(ctx, notify.KindSuccess, "auth."+action+"_success.title", "auth."+action+"_success.description")
	return nil
}

// prepare normalizes input in place and validates it.
func prepare(input any) error {
	if err := sanitizer.SanitizeStruct(input); err != nil {
		return err
	}
	return validator.ValidateStruct(input)
}

// reject reports input that never reached the server.
func (m *Manager) reject(ctx context.Context, action string, err error) error {
	m.logger.DebugContext(ctx, "invalid input", logger.Action(action), logger.Error(err))
	m.notifier.Notify(ctx, notify.KindError, "auth."+action+"_failed.title", notify.ValidationMessage(m.notifier, err))
	return err
}

// Logout removes the persisted token and clears the session. It never
// touches the network.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Delete(ctx, TokenKey); err != nil {
		m.logger.ErrorContext(ctx, "failed to remove session token", logger.Error(err))
	}
	m.apply(ctx, func(s *State) { *s = State{} })
	m.notifier.Notify(ctx, notify.KindInfo, "auth.logout.title", "auth.logout.description")
}

// Invalidate drops the token and the user without notifying. It is the
// target of the HTTP adapter's 401 hook.
func (m *Manager) Invalidate(ctx context.Context) {
	if err := m.store.Delete(ctx, TokenKey); err != nil {
		m.logger.ErrorContext(ctx, "failed to remove session token", logger.Error(err))
	}

	m.mu.RLock()
	signedIn := m.state.Token != "" || m.state.User != nil
	m.mu.RUnlock()
	if !signedIn {
		return
	}

	m.logger.InfoContext(ctx, "session invalidated by server")
	m.apply(ctx, func(s *State) {
		s.Token = ""
		s.User = nil
	})
}

// Token returns the persisted bearer token, or "" when none is stored.
func (m *Manager) Token(ctx context.Context) (string, error) {
	token, err := m.store.Get(ctx, TokenKey)
	if errors.Is(err, kv.ErrNotFound) {
		return "", nil
	}
	return token, err
}

// State returns a snapshot of the session.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state.clone()
}

// CurrentUser returns the signed-in user.
func (m *Manager) CurrentUser() (model.User, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.state.User == nil {
		return model.User{}, false
	}
	return *m.state.User, true
}

// Ready is closed once Bootstrap has finished.
func (m *Manager) Ready() <-chan struct{} {
	return m.ready
}

func (m *Manager) apply(ctx context.Context, fn func(*State)) {
	m.transition.Lock()
	defer m.transition.Unlock()

	m.mu.Lock()
	fn(&m.state)
	snap := m.state.clone()
	m.mu.Unlock()

	if m.events == nil {
		return
	}
	if err := m.events.Publish(context.WithoutCancel(ctx), StateChanged{State: snap}); err != nil {
		m.logger.ErrorContext(ctx, "failed to publish session change", logger.Error(err))
	}
}
