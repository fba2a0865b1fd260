package checkout

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/core/logger"
	"github.com/dmitrymomot/storefront/core/notify"
	"github.com/dmitrymomot/storefront/core/validator"
	"github.com/dmitrymomot/storefront/model"
	"github.com/dmitrymomot/storefront/orders"
)

// Cart is the part of the cart the flow needs. *cart.Manager satisfies it.
type Cart interface {
	Items() []cart.Item
	Clear(ctx context.Context) error
}

// State is a snapshot of the flow.
type State struct {
	Loading bool
	Err     string
}

// Flow runs checkouts one at a time.
type Flow struct {
	mu    sync.Mutex
	state State

	cart     Cart
	orders   orders.Creator
	notifier notify.Notifier
	logger   *slog.Logger
}

// Option configures a Flow.
type Option func(*Flow)

// WithNotifier sets where checkout outcomes are reported.
func WithNotifier(n notify.Notifier) Option {
	return func(f *Flow) {
		if n != nil {
			f.notifier = n
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(f *Flow) {
		if l != nil {
			f.logger = l
		}
	}
}

// NewFlow creates a checkout flow over c and o.
func NewFlow(c Cart, o orders.Creator, opts ...Option) *Flow {
	f := &Flow{
		cart:     c,
		orders:   o,
		notifier: notify.Nop{},
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.With(logger.Component("checkout"))
	return f
}

// Checkout places an order for every cart line in storeID. The cart is
// cleared only after the order has been created.
func (f *Flow) Checkout(ctx context.Context, storeID int64) (model.Order, error) {
	f.mu.Lock()
	if f.state.Loading {
		f.mu.Unlock()
		return model.Order{}, ErrInProgress
	}
	f.state = State{Loading: true}
	f.mu.Unlock()

	order, message, err := f.checkout(ctx, storeID)

	f.mu.Lock()
	f.state = State{Err: message}
	f.mu.Unlock()
	return order, err
}

func (f *Flow) checkout(ctx context.Context, storeID int64) (model.Order, string, error) {
	items := f.cart.Items()
	if len(items) == 0 {
		f.notifier.Notify(ctx, notify.KindError, "checkout.empty.title", "checkout.empty.description")
		return model.Order{}, "", ErrEmptyCart
	}

	lines := make([]model.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, model.OrderLine{ProductID: it.Product.ID, Quantity: it.Quantity})
	}

	if err := validate(storeID, lines); err != nil {
		message := f.validationMessage(err)
		f.notifier.Notify(ctx, notify.KindError, "checkout.validation.title", message)
		return model.Order{}, message, err
	}

	order, err := f.orders.Create(ctx, storeID, lines)
	if err != nil {
		message := apiclient.MessageOf(err, f.notifier.T("checkout.error.fallback"))
		f.logger.ErrorContext(ctx, "checkout failed", logger.StoreID(storeID), logger.Error(err))
		f.notifier.Notify(ctx, notify.KindError, "checkout.error.title", message)
		return model.Order{}, message, err
	}

	f.logger.InfoContext(ctx, "order placed",
		logger.StoreID(storeID),
		logger.Key("order_id", order.ID),
		logger.Count("lines", len(lines)),
	)
	f.notifier.Notify(ctx, notify.KindSuccess, "checkout.success.title", "checkout.success.description")

	if err := f.cart.Clear(ctx); err != nil {
		f.logger.WarnContext(ctx, "clear cart after checkout", logger.Error(err))
	}
	return order, "", nil
}

// State returns a snapshot.
func (f *Flow) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

type payload struct {
	StoreID int64             `json:"store_id" validate:"positive"`
	Items   []model.OrderLine `json:"items" validate:"required"`
}

// validate maps payload failures onto ErrInvalidStore and ErrInvalidItems,
// keeping the field-level errors joined alongside.
func validate(storeID int64, lines []model.OrderLine) error {
	err := validator.ValidateStruct(&payload{StoreID: storeID, Items: lines})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	var errs []error
	if verrs.Has("store_id") {
		errs = append(errs, ErrInvalidStore)
	}
	if verrs.Has("items") {
		errs = append(errs, ErrInvalidItems)
	}
	return errors.Join(append(errs, err)...)
}

func (f *Flow) validationMessage(err error) string {
	var parts []string
	if errors.Is(err, ErrInvalidStore) {
		parts = append(parts, f.notifier.T("checkout.validation.store"))
	}
	if errors.Is(err, ErrInvalidItems) {
		parts = append(parts, f.notifier.T("checkout.validation.items"))
	}
	return strings.Join(parts, "; ")
}
