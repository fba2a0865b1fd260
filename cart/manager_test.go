package cart_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/auth"
	"github.com/dmitrymomot/storefront/cart"
	"github.com/dmitrymomot/storefront/core/event"
	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/core/notify"
	"github.com/dmitrymomot/storefront/model"
)

func signedIn(id int64) auth.State {
	return auth.State{Token: "tok", User: &model.User{ID: id}}
}

func product(id int64, price string, name string) model.Product {
	return model.Product{ID: id, Name: name, Price: decimal.RequireFromString(price)}
}

type fixture struct {
	store  *kv.Memory
	center *notify.Center
	cart   *cart.Manager
}

func newFixture(t *testing.T, store kv.Store, opts ...cart.Option) *fixture {
	t.Helper()

	center, err := notify.NewCenter(notify.WithTTL(time.Minute))
	require.NoError(t, err)
	t.Cleanup(func() { _ = center.Close() })

	mem, _ := store.(*kv.Memory)
	if store == nil {
		mem = kv.NewMemory()
		store = mem
	}

	m := cart.NewManager(store, append([]cart.Option{cart.WithNotifier(center)}, opts...)...)
	t.Cleanup(m.Close)
	return &fixture{store: mem, center: center, cart: m}
}

func (f *fixture) titles() []string {
	var out []string
	for _, n := range f.center.Active() {
		out = append(out, n.Title)
	}
	return out
}

func (f *fixture) last(t *testing.T) notify.Notification {
	t.Helper()
	active := f.center.Active()
	require.NotEmpty(t, active)
	return active[len(active)-1]
}

func TestAddAccumulates(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	f.cart.Sync(ctx, signedIn(1))

	p := product(7, "10", "Celular")
	require.NoError(t, f.cart.Add(ctx, p, 2))
	require.NoError(t, f.cart.Add(ctx, p, 3))

	items := f.cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(7), items[0].Product.ID)
	assert.Equal(t, 5, items[0].Quantity)
	assert.Equal(t, 5, f.cart.TotalItems())
	assert.True(t, decimal.NewFromInt(50).Equal(f.cart.TotalAmount()))

	assert.Equal(t, []string{"Producto Añadido", "Carrito Actualizado"}, f.titles())
	assert.Equal(t, "Se añadió más de Celular al carrito.", f.last(t).Description)

	raw, err := f.store.Get(ctx, "@movistore_cart_1")
	require.NoError(t, err)
	var stored []cart.Item
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	require.Len(t, stored, 1)
	assert.Equal(t, 5, stored[0].Quantity)
}

func TestAddKeepsProductsUnique(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	f.cart.Sync(ctx, signedIn(1))

	ids := []int64{1, 2, 1, 3, 2, 2, 4, 1}
	for _, id := range ids {
		require.NoError(t, f.cart.Add(ctx, product(id, "1.5", "p"), 1))
	}

	seen := map[int64]int{}
	for _, it := range f.cart.Items() {
		seen[it.Product.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "product %d duplicated", id)
	}
	assert.Equal(t, len(ids), f.cart.TotalItems())
	assert.True(t, decimal.RequireFromString("12").Equal(f.cart.TotalAmount()))
}

func TestAddRejectsInvalidQuantity(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.cart.Sync(context.Background(), signedIn(1))

	assert.ErrorIs(t, f.cart.Add(context.Background(), product(1, "1", "p"), 0), cart.ErrInvalidQuantity)
	assert.Empty(t, f.cart.Items())

	n := f.last(t)
	assert.Equal(t, notify.KindError, n.Kind)
	assert.Equal(t, "Error de Carrito", n.Title)
	assert.Equal(t, "La cantidad debe ser mayor que cero.", n.Description)
}

func TestMutationsRequireSession(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	f.cart.Sync(ctx, auth.State{})

	assert.ErrorIs(t, f.cart.Add(ctx, product(1, "10", "p"), 1), cart.ErrNotAuthenticated)
	n := f.last(t)
	assert.Equal(t, notify.KindError, n.Kind)
	assert.Equal(t, "Acceso denegado", n.Title)
	assert.Equal(t, "Debes iniciar sesión para añadir productos al carrito.", n.Description)

	assert.ErrorIs(t, f.cart.Remove(ctx, 1), cart.ErrNotAuthenticated)
	assert.ErrorIs(t, f.cart.UpdateQuantity(ctx, 1, 2), cart.ErrNotAuthenticated)
	assert.Equal(t, "Debes iniciar sesión para modificar el carrito.", f.last(t).Description)
	assert.ErrorIs(t, f.cart.Clear(ctx), cart.ErrNotAuthenticated)
	assert.Equal(t, "Debes iniciar sesión para vaciar el carrito.", f.last(t).Description)

	assert.ErrorIs(t, f.cart.Add(ctx, product(7, "10", "Celular"), 0), cart.ErrNotAuthenticated)
	assert.Equal(t, "Debes iniciar sesión para añadir productos al carrito.", f.last(t).Description)

	assert.Empty(t, f.cart.Items())
	assert.Len(t, f.center.Active(), 5)
}

func TestMutationsBeforeFirstSyncAreDenied(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	assert.True(t, f.cart.Loading())
	assert.ErrorIs(t, f.cart.Add(context.Background(), product(1, "1", "p"), 1), cart.ErrNotAuthenticated)
}

func TestUpdateQuantity(t *testing.T) {
	t.Parallel()

	for _, qty := range []int{0, -5} {
		t.Run("non-positive removes", func(t *testing.T) {
			t.Parallel()

			f := newFixture(t, nil)
			ctx := context.Background()
			f.cart.Sync(ctx, signedIn(1))
			require.NoError(t, f.cart.Add(ctx, product(1, "1", "a"), 1))
			require.NoError(t, f.cart.Add(ctx, product(2, "1", "b"), 1))

			require.NoError(t, f.cart.UpdateQuantity(ctx, 1, qty))

			items := f.cart.Items()
			require.Len(t, items, 1)
			assert.Equal(t, int64(2), items[0].Product.ID)
			assert.Equal(t, "Producto Eliminado", f.last(t).Title)
		})
	}

	t.Run("sets quantity", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, nil)
		ctx := context.Background()
		f.cart.Sync(ctx, signedIn(1))
		require.NoError(t, f.cart.Add(ctx, product(1, "2.50", "a"), 1))

		require.NoError(t, f.cart.UpdateQuantity(ctx, 1, 4))
		assert.Equal(t, 4, f.cart.Items()[0].Quantity)
		assert.True(t, decimal.NewFromInt(10).Equal(f.cart.TotalAmount()))
		n := f.last(t)
		assert.Equal(t, notify.KindInfo, n.Kind)
		assert.Equal(t, "Cantidad Actualizada", n.Title)
	})

	t.Run("unknown product ignored", func(t *testing.T) {
		t.Parallel()

		f := newFixture(t, nil)
		ctx := context.Background()
		f.cart.Sync(ctx, signedIn(1))

		require.NoError(t, f.cart.UpdateQuantity(ctx, 99, 3))
		assert.Empty(t, f.cart.Items())
		assert.Empty(t, f.center.Active())
	})
}

func TestRemoveMissingStillNotifies(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	f.cart.Sync(context.Background(), signedIn(1))

	require.NoError(t, f.cart.Remove(context.Background(), 42))
	assert.Equal(t, notify.KindInfo, f.last(t).Kind)
}

func TestClear(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	f.cart.Sync(ctx, signedIn(1))
	require.NoError(t, f.cart.Add(ctx, product(1, "1", "a"), 2))

	require.NoError(t, f.cart.Clear(ctx))

	assert.Empty(t, f.cart.Items())
	_, err := f.store.Get(ctx, cart.StorageKey(cart.DefaultAppName, 1))
	assert.ErrorIs(t, err, kv.ErrNotFound)
	assert.Equal(t, "Carrito Vaciado", f.last(t).Title)
}

func TestPartitionsAreIsolated(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()

	f.cart.Sync(ctx, signedIn(1))
	require.NoError(t, f.cart.Add(ctx, product(10, "5", "a"), 1))

	f.cart.Sync(ctx, auth.State{})
	assert.Empty(t, f.cart.Items())

	f.cart.Sync(ctx, signedIn(2))
	assert.Empty(t, f.cart.Items())
	require.NoError(t, f.cart.Add(ctx, product(20, "5", "b"), 1))

	f.cart.Sync(ctx, auth.State{})
	f.cart.Sync(ctx, signedIn(1))
	items := f.cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(10), items[0].Product.ID)
}

func TestSwitchingUsersWithoutLogout(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()

	f.cart.Sync(ctx, signedIn(1))
	require.NoError(t, f.cart.Add(ctx, product(10, "5", "a"), 1))

	f.cart.Sync(ctx, signedIn(2))
	assert.Empty(t, f.cart.Items())
}

func TestPurgeOnLogout(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil, cart.WithPurgeOnLogout(), cart.WithAppName("shop"))
	ctx := context.Background()

	f.cart.Sync(ctx, signedIn(1))
	require.NoError(t, f.cart.Add(ctx, product(10, "5", "a"), 1))
	_, err := f.store.Get(ctx, "@shop_cart_1")
	require.NoError(t, err)

	f.cart.Sync(ctx, auth.State{})
	_, err = f.store.Get(ctx, "@shop_cart_1")
	assert.ErrorIs(t, err, kv.ErrNotFound)
}

func TestSyncIgnoresLoadingStates(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	f.cart.Sync(ctx, signedIn(1))
	require.NoError(t, f.cart.Add(ctx, product(1, "1", "a"), 1))

	f.cart.Sync(ctx, auth.State{Loading: true})
	assert.Len(t, f.cart.Items(), 1)
}

func TestLoadRestoresAndNormalizes(t *testing.T) {
	t.Parallel()

	store := kv.NewMemory()
	ctx := context.Background()
	raw := `[{"product":{"id":1,"name":"a","price":"2"},"quantity":1},
		{"product":{"id":1,"name":"a","price":"2"},"quantity":2},
		{"product":{"id":2,"name":"b","price":"3"},"quantity":0}]`
	require.NoError(t, store.Set(ctx, "@movistore_cart_5", raw))

	f := newFixture(t, store)
	f.cart.Sync(ctx, signedIn(5))

	items := f.cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.False(t, f.cart.Loading())
}

func TestLoadFailure(t *testing.T) {
	t.Parallel()

	store := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "@movistore_cart_5", "{not json"))

	f := newFixture(t, store)
	f.cart.Sync(ctx, signedIn(5))

	assert.Empty(t, f.cart.Items())
	assert.False(t, f.cart.Loading())
	n := f.last(t)
	assert.Equal(t, "Error de Carrito", n.Title)
	assert.Equal(t, "No se pudo cargar el carrito.", n.Description)
}

type failingSetStore struct {
	*kv.Memory
}

func (failingSetStore) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestSaveFailureKeepsMemory(t *testing.T) {
	t.Parallel()

	f := newFixture(t, failingSetStore{kv.NewMemory()})
	ctx := context.Background()
	f.cart.Sync(ctx, signedIn(1))

	require.NoError(t, f.cart.Add(ctx, product(1, "1", "a"), 1))
	assert.Len(t, f.cart.Items(), 1)
	assert.Contains(t, f.titles(), "Error de Carrito")
	assert.Contains(t, f.titles(), "Producto Añadido")
}

// gatedStore blocks Get for keys with an open gate.
type gatedStore struct {
	*kv.Memory
	mu      sync.Mutex
	gates   map[string]chan struct{}
	entered chan string
}

func newGatedStore() *gatedStore {
	return &gatedStore{
		Memory:  kv.NewMemory(),
		gates:   map[string]chan struct{}{},
		entered: make(chan string, 4),
	}
}

func (s *gatedStore) gate(key string) chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	ch := make(chan struct{})
	s.gates[key] = ch
	return ch
}

func (s *gatedStore) Get(ctx context.Context, key string) (string, error) {
	s.mu.Lock()
	ch, ok := s.gates[key]
	s.mu.Unlock()
	if ok {
		s.entered <- key
		<-ch
	}
	return s.Memory.Get(ctx, key)
}

func TestMutationWaitsForLoad(t *testing.T) {
	t.Parallel()

	store := newGatedStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "@movistore_cart_1", `[{"product":{"id":1,"name":"a","price":"1"},"quantity":2}]`))
	release := store.gate("@movistore_cart_1")

	f := newFixture(t, store)
	synced := make(chan struct{})
	go func() {
		f.cart.Sync(ctx, signedIn(1))
		close(synced)
	}()
	<-store.entered
	assert.True(t, f.cart.Loading())

	added := make(chan error)
	go func() { added <- f.cart.Add(ctx, product(2, "1", "b"), 1) }()

	select {
	case <-added:
		t.Fatal("add finished before the cart loaded")
	case <-time.After(30 * time.Millisecond):
	}

	close(release)
	<-synced
	require.NoError(t, <-added)

	items := f.cart.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].Product.ID)
	assert.Equal(t, int64(2), items[1].Product.ID)
}

func TestMutationWaitRespectsContext(t *testing.T) {
	t.Parallel()

	store := newGatedStore()
	release := store.gate("@movistore_cart_1")
	defer close(release)

	f := newFixture(t, store)
	go f.cart.Sync(context.Background(), signedIn(1))
	<-store.entered

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, f.cart.Add(ctx, product(2, "1", "b"), 1), context.DeadlineExceeded)
}

func TestStaleLoadDropped(t *testing.T) {
	t.Parallel()

	store := newGatedStore()
	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "@movistore_cart_1", `[{"product":{"id":1},"quantity":1}]`))
	require.NoError(t, store.Set(ctx, "@movistore_cart_2", `[{"product":{"id":2},"quantity":1}]`))
	release := store.gate("@movistore_cart_1")

	f := newFixture(t, store)
	done := make(chan struct{})
	go func() {
		f.cart.Sync(ctx, signedIn(1))
		close(done)
	}()
	<-store.entered

	f.cart.Sync(ctx, signedIn(2))
	close(release)
	<-done

	items := f.cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].Product.ID)
}

func TestEventHandler(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	bus := event.NewBus()
	require.NoError(t, bus.Subscribe(f.cart.EventHandler()))

	ctx := context.Background()
	require.NoError(t, bus.Publish(ctx, auth.StateChanged{State: signedIn(3)}))
	require.NoError(t, f.cart.Add(ctx, product(1, "1", "a"), 1))

	require.NoError(t, bus.Publish(ctx, auth.StateChanged{State: auth.State{}}))
	assert.Empty(t, f.cart.Items())
}

func TestClosedManagerIgnoresWrites(t *testing.T) {
	t.Parallel()

	f := newFixture(t, nil)
	ctx := context.Background()
	f.cart.Sync(ctx, signedIn(1))
	f.cart.Close()

	require.NoError(t, f.cart.Add(ctx, product(1, "1", "a"), 1))
	assert.Empty(t, f.cart.Items())
}
