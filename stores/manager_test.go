package stores_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/core/notify"
	"github.com/dmitrymomot/storefront/model"
	"github.com/dmitrymomot/storefront/stores"
)

type mockLister struct {
	mock.Mock
}

func (m *mockLister) List(ctx context.Context, p stores.ListParams) (stores.ListResult, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(stores.ListResult), args.Error(1)
}

var firstPage = stores.ListParams{Page: 1, Limit: 10}

func storesResult(ids ...int64) stores.ListResult {
	res := stores.ListResult{Pagination: model.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: len(ids), Limit: 10}}
	for _, id := range ids {
		res.Stores = append(res.Stores, model.Store{ID: id, Name: "Sucursal"})
	}
	return res
}

func newManager(t *testing.T, api stores.Lister, store kv.Store) (*stores.Manager, *notify.Center) {
	t.Helper()
	center, err := notify.NewCenter(notify.WithTTL(time.Minute))
	require.NoError(t, err)
	t.Cleanup(func() { _ = center.Close() })
	return stores.NewManager(api, store, stores.WithNotifier(center)), center
}

func TestLoadingUntilFirstFetch(t *testing.T) {
	t.Parallel()

	api := &mockLister{}
	api.On("List", mock.Anything, firstPage).Return(storesResult(2), nil).Once()
	m, _ := newManager(t, api, kv.NewMemory())

	assert.True(t, m.State().Loading)
	assert.Nil(t, m.State().SelectedStoreID)

	state := m.Fetch(context.Background())
	assert.False(t, state.Loading)
	assert.False(t, m.State().Loading)
}

func TestFetchSelection(t *testing.T) {
	t.Parallel()

	t.Run("defaults to first store and persists it", func(t *testing.T) {
		t.Parallel()

		api := &mockLister{}
		api.On("List", mock.Anything, firstPage).Return(storesResult(4, 5), nil).Once()
		store := kv.NewMemory()
		m, _ := newManager(t, api, store)

		state := m.Fetch(context.Background())

		require.NotNil(t, state.SelectedStoreID)
		assert.Equal(t, int64(4), *state.SelectedStoreID)
		assert.Len(t, state.Stores, 2)
		assert.False(t, state.Loading)

		raw, err := store.Get(context.Background(), stores.SelectedStoreKey)
		require.NoError(t, err)
		assert.Equal(t, "4", raw)
		api.AssertExpectations(t)
	})

	t.Run("restores persisted store", func(t *testing.T) {
		t.Parallel()

		api := &mockLister{}
		api.On("List", mock.Anything, firstPage).Return(storesResult(4, 5), nil).Once()
		store := kv.NewMemory()
		require.NoError(t, store.Set(context.Background(), stores.SelectedStoreKey, "5"))
		m, _ := newManager(t, api, store)

		m.Fetch(context.Background())

		id, ok := m.SelectedStoreID()
		require.True(t, ok)
		assert.Equal(t, int64(5), id)
	})

	t.Run("falls back when persisted store is gone", func(t *testing.T) {
		t.Parallel()

		api := &mockLister{}
		api.On("List", mock.Anything, firstPage).Return(storesResult(4, 5), nil).Once()
		store := kv.NewMemory()
		require.NoError(t, store.Set(context.Background(), stores.SelectedStoreKey, "99"))
		m, _ := newManager(t, api, store)

		m.Fetch(context.Background())

		id, ok := m.SelectedStoreID()
		require.True(t, ok)
		assert.Equal(t, int64(4), id)
		raw, err := store.Get(context.Background(), stores.SelectedStoreKey)
		require.NoError(t, err)
		assert.Equal(t, "4", raw)
	})

	t.Run("empty list keeps no selection", func(t *testing.T) {
		t.Parallel()

		api := &mockLister{}
		api.On("List", mock.Anything, firstPage).Return(storesResult(), nil).Once()
		m, _ := newManager(t, api, kv.NewMemory())

		state := m.Fetch(context.Background())
		assert.Nil(t, state.SelectedStoreID)
		assert.Empty(t, state.Stores)
	})
}

func TestFetchFailure(t *testing.T) {
	t.Parallel()

	api := &mockLister{}
	api.On("List", mock.Anything, firstPage).Return(stores.ListResult{}, &apiclient.Error{StatusCode: 500, Message: "sin conexión"}).Once()
	m, center := newManager(t, api, kv.NewMemory())

	state := m.Fetch(context.Background())

	assert.Equal(t, "sin conexión", state.Err)
	assert.False(t, state.Loading)
	active := center.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Error de carga", active[0].Title)
	assert.Equal(t, "No se pudieron cargar las tiendas: sin conexión", active[0].Description)
}

func TestSelect(t *testing.T) {
	t.Parallel()

	t.Run("persists and clears", func(t *testing.T) {
		t.Parallel()

		store := kv.NewMemory()
		m, _ := newManager(t, &mockLister{}, store)
		ctx := context.Background()

		id := int64(8)
		m.Select(ctx, &id)
		raw, err := store.Get(ctx, stores.SelectedStoreKey)
		require.NoError(t, err)
		assert.Equal(t, "8", raw)

		m.Select(ctx, nil)
		_, ok := m.SelectedStoreID()
		assert.False(t, ok)
		_, err = store.Get(ctx, stores.SelectedStoreKey)
		assert.ErrorIs(t, err, kv.ErrNotFound)
	})

	t.Run("persistence failure keeps selection", func(t *testing.T) {
		t.Parallel()

		m, center := newManager(t, &mockLister{}, brokenStore{kv.NewMemory()})
		id := int64(3)
		m.Select(context.Background(), &id)

		got, ok := m.SelectedStoreID()
		require.True(t, ok)
		assert.Equal(t, int64(3), got)

		active := center.Active()
		require.Len(t, active, 1)
		assert.Equal(t, "No se pudo guardar la selección de tienda.", active[0].Description)
	})
}

type brokenStore struct {
	*kv.Memory
}

func (brokenStore) Set(context.Context, string, string) error {
	return errors.New("read-only")
}
