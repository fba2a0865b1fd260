package storefront

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/storefront/auth"
	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/categories"
	"github.com/dmitrymomot/storefront/checkout"
	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/core/config"
	"github.com/dmitrymomot/storefront/core/event"
	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/notify"
	"github.com/dmitrymomot/storefront/core/pagination"
	"github.com/dmitrymomot/storefront/model"
	"github.com/dmitrymomot/storefront/orders"
	"github.com/dmitrymomot/storefront/products"
	"github.com/dmitrymomot/storefront/stores"
)

// App is the composition root. Every component shares one local store, one
// notification center and one API client.
type App struct {
	config   Config
	logger   *slog.Logger
	store    kv.Store
	device   string
	http     *http.Client
	ping     func(context.Context) error
	closers  []func() error
	closeErr error
	once     sync.Once

	notifier *notify.Center
	bus      *event.Bus
	client   *apiclient.Client

	auth     *auth.Manager
	cart     *cart.Manager
	stores   *stores.Manager
	checkout *checkout.Flow

	productService  *products.Service
	categoryService *categories.Service
	storeService    *stores.Service
	orderService    *orders.Service
}

type AppOption func(*App) error

// WithLogger replaces the logger built from Config.
func WithLogger(l *slog.Logger) AppOption {
	return func(a *App) error {
		if l == nil {
			return ErrNilOption
		}
		a.logger = l
		return nil
	}
}

// WithStore replaces the configured storage backend. The caller keeps
// ownership of s.
func WithStore(s kv.Store) AppOption {
	return func(a *App) error {
		if s == nil {
			return ErrNilOption
		}
		a.store = s
		return nil
	}
}

// WithHTTPClient sets the client used for API calls.
func WithHTTPClient(c *http.Client) AppOption {
	return func(a *App) error {
		if c == nil {
			return ErrNilOption
		}
		a.http = c
		return nil
	}
}

// NewFromEnv loads Config from the environment and calls New.
func NewFromEnv(ctx context.Context, opts ...AppOption) (*App, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(ctx, cfg, opts...)
}

// New wires an App. It does not touch the network; call Bootstrap to restore
// the session and load stores.
func New(ctx context.Context, cfg Config, opts ...AppOption) (*App, error) {
	if cfg.AppName == "" {
		cfg.AppName = cart.DefaultAppName
	}
	a := &App{config: cfg}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if a.logger == nil {
		a.logger = newLogger(cfg)
	}

	if a.store == nil {
		b, err := openStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		a.store = b.store
		a.ping = b.ping
		a.closers = append(a.closers, b.close)
	}

	if err := a.wire(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}
	a.logger.DebugContext(ctx, "storefront ready",
		logger.Key("device", a.device),
		logger.Key("api", a.client.BaseURL()),
	)
	return a, nil
}

func (a *App) wire(ctx context.Context) error {
	device, err := deviceID(ctx, a.store, a.config.DeviceID)
	if err != nil {
		return err
	}
	a.device = device
	local := kv.Scoped(a.store, device)

	center, err := notify.NewCenter(
		notify.WithTTL(a.config.NotificationTTL),
		notify.WithLanguage(a.config.Language),
		notify.WithLogger(a.logger),
	)
	if err != nil {
		return err
	}
	a.notifier = center
	a.closers = append(a.closers, center.Close)

	a.bus = event.NewBus(event.WithLogger(a.logger))

	clientOpts := []apiclient.Option{
		apiclient.WithLogger(a.logger),
		apiclient.WithTokenSource(apiclient.TokenSourceFunc(func(ctx context.Context) (string, error) {
			return a.auth.Token(ctx)
		})),
		apiclient.WithUnauthorizedHandler(func(ctx context.Context) {
			a.auth.Invalidate(ctx)
		}),
	}
	if a.http != nil {
		clientOpts = append(clientOpts, apiclient.WithHTTPClient(a.http))
	}
	client, err := apiclient.New(a.config.API, clientOpts...)
	if err != nil {
		return err
	}
	a.client = client

	a.auth = auth.NewManager(auth.NewService(client), local,
		auth.WithNotifier(center),
		auth.WithPublisher(a.bus),
		auth.WithLogger(a.logger),
	)

	cartOpts := []cart.Option{
		cart.WithNotifier(center),
		cart.WithLogger(a.logger),
		cart.WithAppName(a.config.AppName),
	}
	if a.config.PurgeCartOnLogout {
		cartOpts = append(cartOpts, cart.WithPurgeOnLogout())
	}
	a.cart = cart.NewManager(local, cartOpts...)
	if err := a.bus.Subscribe(a.cart.EventHandler()); err != nil {
		return err
	}

	a.storeService = stores.NewService(client)
	a.stores = stores.NewManager(a.storeService, local,
		stores.WithNotifier(center),
		stores.WithLogger(a.logger),
	)

	a.productService = products.NewService(client)
	a.categoryService = categories.NewService(client)
	a.orderService = orders.NewService(client)
	a.checkout = checkout.NewFlow(a.cart, a.orderService,
		checkout.WithNotifier(center),
		checkout.WithLogger(a.logger),
	)
	return nil
}

// Bootstrap restores the persisted session and loads the store list
// concurrently. The cart settles when the session does.
func (a *App) Bootstrap(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.auth.Bootstrap(gctx)
		return gctx.Err()
	})
	g.Go(func() error {
		if st := a.stores.Fetch(gctx); st.Err != "" {
			a.logger.WarnContext(gctx, "store list unavailable", logger.Key("message", st.Err))
		}
		return gctx.Err()
	})
	return g.Wait()
}

// ProductList returns a product list whose stock follows the selected store.
func (a *App) ProductList(opts ...pagination.Option) *pagination.List[model.Product, products.Filter] {
	return products.NewList(a.productService, a.stores, a.listOptions(opts)...)
}

// CategoryList returns a category list sharing the app notifier and debounce.
func (a *App) CategoryList(opts ...pagination.Option) *pagination.List[model.Category, categories.Filter] {
	return categories.NewList(a.categoryService, a.listOptions(opts)...)
}

// StoreList returns a paginated store list for management screens. Selection
// lives in Stores.
func (a *App) StoreList(opts ...pagination.Option) *pagination.List[model.Store, stores.Filter] {
	return stores.NewList(a.storeService, a.listOptions(opts)...)
}

// OrderList returns an order list limited to the signed-in customer's own
// orders; admins see every order.
func (a *App) OrderList(opts ...pagination.Option) *pagination.List[model.Order, orders.Filter] {
	return orders.NewList(a.orderService, a.auth, a.listOptions(opts)...)
}

func (a *App) listOptions(opts []pagination.Option) []pagination.Option {
	return append([]pagination.Option{
		pagination.WithNotifier(a.notifier),
		pagination.WithLogger(a.logger),
		pagination.WithDebounce(a.config.SearchDebounce),
	}, opts...)
}

// Auth returns the session manager.
func (a *App) Auth() *auth.Manager { return a.auth }

// Cart returns the cart manager.
func (a *App) Cart() *cart.Manager { return a.cart }

// Stores returns the store selection manager.
func (a *App) Stores() *stores.Manager { return a.stores }

// Checkout returns the checkout flow.
func (a *App) Checkout() *checkout.Flow { return a.checkout }

// Notifications returns the shared notification center.
func (a *App) Notifications() *notify.Center { return a.notifier }

// Products returns the products REST service.
func (a *App) Products() *products.Service { return a.productService }

// Categories returns the categories REST service.
func (a *App) Categories() *categories.Service { return a.categoryService }

// StoreService returns the stores REST service.
func (a *App) StoreService() *stores.Service { return a.storeService }

// Orders returns the orders REST service.
func (a *App) Orders() *orders.Service { return a.orderService }

// Logger returns the app logger.
func (a *App) Logger() *slog.Logger { return a.logger }

// Config returns the configuration the app was built from.
func (a *App) Config() Config { return a.config }

// DeviceID returns the id that scopes every persisted key.
func (a *App) DeviceID() string { return a.device }

// Healthcheck pings the local store. Stores without a connection to check,
// including ones passed through WithStore, always report healthy.
func (a *App) Healthcheck(ctx context.Context) error {
	if a.ping == nil {
		return nil
	}
	if err := a.ping(ctx); err != nil {
		return fmt.Errorf("storefront: storage unhealthy: %w", err)
	}
	return nil
}

// Close stops the managers and releases the store. It is safe to call more
// than once.
func (a *App) Close() error {
	a.once.Do(func() {
		if a.cart != nil {
			a.cart.Close()
		}
		if a.stores != nil {
			a.stores.Close()
		}
		var errs []error
		for _, fn := range slices.Backward(a.closers) {
			if err := fn(); err != nil {
				errs = append(errs, err)
			}
		}
		a.closeErr = errors.Join(errs...)
	})
	return a.closeErr
}

func newLogger(cfg Config) *slog.Logger {
	var opts []logger.Option
	if cfg.Env == "production" {
		opts = append(opts, logger.WithProduction(cfg.AppName))
	} else {
		opts = append(opts, logger.WithDevelopment(cfg.AppName))
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	switch cfg.LogFormat {
	case "json":
		opts = append(opts, logger.WithJSONFormatter())
	case "text":
		opts = append(opts, logger.WithTextFormatter())
	}
	return logger.New(opts...)
}
