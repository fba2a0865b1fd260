package storefront_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront"
	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/model"
	"github.com/dmitrymomot/storefront/products"
)

// fakeAPI serves the subset of the backend the tests touch.
type fakeAPI struct {
	mu        sync.Mutex
	revoked   bool
	lastQuery map[string]string
	created   []model.OrderLine
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	authed := r.Header.Get("Authorization") == "Bearer tok-1" && !f.revoked
	path := strings.TrimPrefix(r.URL.Path, "/api/v1")

	switch {
	case r.Method == http.MethodPost && path == "/auth/login":
		writeData(w, map[string]any{
			"token": "tok-1",
			"user":  map[string]any{"id": 7, "name": "Ana", "role": "customer"},
		})
	case path == "/auth/me" && authed:
		writeData(w, map[string]any{"user": map[string]any{"id": 7, "name": "Ana", "role": "customer"}})
	case path == "/stores":
		writeData(w, map[string]any{
			"stores": []map[string]any{{"id": 3, "name": "Centro"}, {"id": 4, "name": "Norte"}},
		})
	case path == "/products":
		f.lastQuery = map[string]string{"storeId": r.URL.Query().Get("storeId")}
		writeData(w, map[string]any{
			"products":   []map[string]any{{"id": 11, "name": "Tenis", "price": "25.50"}},
			"pagination": map[string]int{"currentPage": 1, "totalPages": 1, "totalItems": 1, "limit": 10},
		})
	case r.Method == http.MethodPost && path == "/orders" && authed:
		var body struct {
			StoreID int64             `json:"store_id"`
			Items   []model.OrderLine `json:"items"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		f.created = body.Items
		writeData(w, map[string]any{"order": map[string]any{"id": 100, "store_id": body.StoreID, "status": "pending"}})
	case path == "/orders" && authed:
		writeData(w, map[string]any{"orders": []map[string]any{}})
	default:
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"status":"error","message":"Token inválido"}`))
	}
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": data})
}

func newApp(t *testing.T, api *fakeAPI, store kv.Store) *storefront.App {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	app, err := storefront.New(context.Background(), storefront.Config{
		API:             apiclient.Config{BaseURL: srv.URL + "/api/v1"},
		NotificationTTL: time.Minute,
		Language:        "es",
	}, storefront.WithStore(store))
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app
}

func TestAppSessionToCheckout(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	app := newApp(t, api, kv.NewMemory())
	ctx := context.Background()

	require.NoError(t, app.Bootstrap(ctx))
	assert.False(t, app.Auth().State().IsAuthenticated())
	id, ok := app.Stores().SelectedStoreID()
	require.True(t, ok)
	assert.Equal(t, int64(3), id)

	// Signed out: the cart refuses mutations.
	tenis := model.Product{ID: 11, Name: "Tenis", Price: decimal.RequireFromString("25.50")}
	require.Error(t, app.Cart().Add(ctx, tenis, 1))

	require.NoError(t, app.Auth().Login(ctx, model.LoginCredentials{Email: "ana@example.com", Password: "secret"}))
	require.NoError(t, app.Cart().Add(ctx, tenis, 2))
	assert.Equal(t, 2, app.Cart().TotalItems())
	assert.True(t, decimal.RequireFromString("51").Equal(app.Cart().TotalAmount()))

	list := app.ProductList()
	defer list.Close()
	page := list.Fetch(ctx)
	require.Len(t, page.Items, 1)
	api.mu.Lock()
	assert.Equal(t, "3", api.lastQuery["storeId"])
	api.mu.Unlock()

	order, err := app.Checkout().Checkout(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(100), order.ID)
	assert.Empty(t, app.Cart().Items())

	api.mu.Lock()
	assert.Equal(t, []model.OrderLine{{ProductID: 11, Quantity: 2}}, api.created)
	api.mu.Unlock()
}

func TestAppUnauthorizedDropsSession(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	app := newApp(t, api, kv.NewMemory())
	ctx := context.Background()

	require.NoError(t, app.Bootstrap(ctx))
	require.NoError(t, app.Auth().Login(ctx, model.LoginCredentials{Email: "ana@example.com", Password: "secret"}))
	require.NoError(t, app.Cart().Add(ctx, model.Product{ID: 1, Price: decimal.NewFromInt(1)}, 1))

	api.mu.Lock()
	api.revoked = true
	api.mu.Unlock()

	list := app.OrderList()
	defer list.Close()
	state := list.Fetch(ctx)

	assert.Equal(t, "Token inválido", state.Err)
	assert.False(t, app.Auth().State().IsAuthenticated())
	assert.Empty(t, app.Cart().Items())
	token, err := app.Auth().Token(ctx)
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestAppRestoresSessionAndDevice(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	store := kv.NewMemory()
	ctx := context.Background()

	first := newApp(t, api, store)
	require.NoError(t, first.Bootstrap(ctx))
	require.NoError(t, first.Auth().Login(ctx, model.LoginCredentials{Email: "ana@example.com", Password: "secret"}))
	require.NoError(t, first.Cart().Add(ctx, model.Product{ID: 5, Price: decimal.NewFromInt(3)}, 4))
	require.NoError(t, first.Close())

	second := newApp(t, api, store)
	assert.Equal(t, first.DeviceID(), second.DeviceID())
	require.NoError(t, second.Bootstrap(ctx))

	user, ok := second.Auth().CurrentUser()
	require.True(t, ok)
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, 4, second.Cart().TotalItems())
}

func TestAppListsUseSharedNotifier(t *testing.T) {
	t.Parallel()

	app := newApp(t, &fakeAPI{}, kv.NewMemory())
	list := app.CategoryList()
	defer list.Close()

	state := list.Fetch(context.Background())
	assert.Equal(t, "Token inválido", state.Err)

	active := app.Notifications().Active()
	require.NotEmpty(t, active)
	assert.Equal(t, "Error de carga", active[len(active)-1].Title)
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	t.Parallel()

	_, err := storefront.New(context.Background(), storefront.Config{Storage: "etcd"})
	assert.ErrorIs(t, err, storefront.ErrUnknownStorage)
}

func TestProductFilterOverridesSelection(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{}
	app := newApp(t, api, kv.NewMemory())
	ctx := context.Background()
	require.NoError(t, app.Bootstrap(ctx))

	list := app.ProductList()
	defer list.Close()
	list.UpdateFilter(ctx, func(f products.Filter) products.Filter {
		f.StoreID = 4
		return f
	})
	require.Eventually(t, func() bool {
		api.mu.Lock()
		defer api.mu.Unlock()
		return api.lastQuery["storeId"] == "4"
	}, time.Second, 10*time.Millisecond)
}

func TestAppHealthcheck(t *testing.T) {
	t.Parallel()

	t.Run("sqlite", func(t *testing.T) {
		t.Parallel()

		app, err := storefront.New(context.Background(), storefront.Config{
			AppName:    "movistore",
			Storage:    storefront.StorageSQLite,
			SQLitePath: filepath.Join(t.TempDir(), "app.db"),
		})
		require.NoError(t, err)
		require.NoError(t, app.Healthcheck(context.Background()))
		assert.NotEmpty(t, app.DeviceID())

		require.NoError(t, app.Close())
		assert.Error(t, app.Healthcheck(context.Background()))
	})

	t.Run("external store", func(t *testing.T) {
		t.Parallel()

		app := newApp(t, &fakeAPI{}, kv.NewMemory())
		assert.NoError(t, app.Healthcheck(context.Background()))
	})
}
