package products_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/pagination"
	"github.com/dmitrymomot/storefront/model"
	"github.com/dmitrymomot/storefront/products"
)

type mockLister struct {
	mock.Mock
}

func (m *mockLister) List(ctx context.Context, p products.ListParams) (products.ListResult, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(products.ListResult), args.Error(1)
}

type fixedSelection struct {
	id int64
	ok bool
}

func (s fixedSelection) SelectedStoreID() (int64, bool) { return s.id, s.ok }

func int64Ptr(v int64) *int64 { return &v }

func TestListMirrorsServerPagination(t *testing.T) {
	t.Parallel()

	api := &mockLister{}
	api.On("List", mock.Anything, products.ListParams{Page: 2, Limit: 10, SearchTerm: "shoe"}).
		Return(products.ListResult{
			Products:   []model.Product{{ID: 11}, {ID: 12}},
			Pagination: model.Pagination{CurrentPage: 2, TotalPages: 5, TotalItems: 42, Limit: 10},
		}, nil).Once()

	list := products.NewList(api, nil,
		pagination.WithPage(2),
		pagination.WithLimit(10),
		pagination.WithFilter(products.Filter{SearchTerm: "shoe"}),
	)
	defer list.Close()

	state := list.Fetch(context.Background())
	assert.Equal(t, 2, state.CurrentPage)
	assert.Equal(t, 5, state.TotalPages)
	assert.Equal(t, 42, state.TotalItems)
	assert.Equal(t, 10, state.Limit)
	assert.Len(t, state.Items, 2)
	api.AssertExpectations(t)
}

func TestListScopesToSelectedStore(t *testing.T) {
	t.Parallel()

	api := &mockLister{}
	api.On("List", mock.Anything, products.ListParams{Page: 1, Limit: 10, StoreID: int64Ptr(4)}).
		Return(products.ListResult{}, nil).Once()
	api.On("List", mock.Anything, products.ListParams{Page: 1, Limit: 10, StoreID: int64Ptr(9), CategoryID: int64Ptr(2)}).
		Return(products.ListResult{}, nil).Once()

	list := products.NewList(api, fixedSelection{id: 4, ok: true}, pagination.WithDebounce(0))
	defer list.Close()

	list.Fetch(context.Background())
	list.SetFilter(context.Background(), products.Filter{StoreID: 9, CategoryID: 2})

	assert.Equal(t, int64(9), list.State().Filter.StoreID)
	api.AssertExpectations(t)
}

func TestListFailureUsesProductFallback(t *testing.T) {
	t.Parallel()

	api := &mockLister{}
	api.On("List", mock.Anything, mock.Anything).Return(products.ListResult{}, errors.New("dial tcp")).Once()

	list := products.NewList(api, fixedSelection{})
	defer list.Close()

	state := list.Fetch(context.Background())
	require.NotEmpty(t, state.Err)
	assert.Equal(t, "list.fallback.products", state.Err)
	assert.Empty(t, state.Items)
}
