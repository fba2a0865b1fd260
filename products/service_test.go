package products_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/products"
)

func newService(t *testing.T, h http.HandlerFunc) *products.Service {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	client, err := apiclient.New(apiclient.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return products.NewService(client)
}

func writeData(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"status": "success", "data": data})
}

func TestServiceGet(t *testing.T) {
	t.Parallel()

	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/products/5":
			assert.Equal(t, "2", r.URL.Query().Get("storeId"))
			writeData(w, map[string]any{"product": map[string]any{"id": 5, "name": "Tenis", "price": "49.90", "stock_in_selected_store": 3}})
		case "/products/5/admin-detail":
			assert.Empty(t, r.URL.Query().Get("storeId"))
			writeData(w, map[string]any{"product": map[string]any{
				"id": 5, "name": "Tenis", "price": "49.90",
				"stock_by_store": []map[string]any{{"store_id": 1, "store_name": "Centro", "quantity": 7}},
			}})
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	t.Run("customer", func(t *testing.T) {
		t.Parallel()

		p, err := svc.Get(context.Background(), 5, int64Ptr(2), false)
		require.NoError(t, err)
		assert.Equal(t, "49.9", p.Price.String())
		require.NotNil(t, p.StockInSelectedStore)
		assert.Equal(t, 3, *p.StockInSelectedStore)
	})

	t.Run("admin", func(t *testing.T) {
		t.Parallel()

		p, err := svc.Get(context.Background(), 5, nil, true)
		require.NoError(t, err)
		require.Len(t, p.StockByStore, 1)
		assert.Equal(t, 7, p.StockByStore[0].Quantity)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		_, err := svc.Get(context.Background(), 6, nil, false)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apiclient.StatusCodeOf(err))
	})
}

func TestServiceStockAndImages(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		calls []string
	)
	svc := newService(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if r.URL.Path == "/products/5/stock" {
			var change products.StockChange
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&change))
			assert.Equal(t, products.StockChange{StoreID: 1, Change: -2, Reason: "venta"}, change)
			writeData(w, map[string]any{"id": 5, "total_stock": 5})
			return
		}
		writeData(w, nil)
	})

	p, err := svc.UpdateStock(context.Background(), 5, products.StockChange{StoreID: 1, Change: -2, Reason: "venta"})
	require.NoError(t, err)
	assert.Equal(t, 5, p.TotalStock)

	require.NoError(t, svc.SetThumbnail(context.Background(), 5, 9))
	require.NoError(t, svc.RemoveImage(context.Background(), 5, 9))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"PATCH /products/5/stock",
		"PATCH /products/5/images/9/thumbnail",
		"DELETE /products/5/images/9",
	}, calls)
}
