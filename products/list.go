package products

import (
	"context"

	"github.com/dmitrymomot/storefront/core/pagination"
	"github.com/dmitrymomot/storefront/model"
)

// Filter narrows the product list. Zero ids mean "any".
type Filter struct {
	IncludeArchived bool
	SearchTerm      string
	CategoryID      int64
	StoreID         int64
}

// StoreSelection supplies the store that stock figures refer to.
// *stores.Manager satisfies it.
type StoreSelection interface {
	SelectedStoreID() (int64, bool)
}

// NewList creates a product list. When selection is non-nil and the filter
// names no store, the selected store is applied at fetch time.
func NewList(api Lister, selection StoreSelection, opts ...pagination.Option) *pagination.List[model.Product, Filter] {
	fetch := func(ctx context.Context, q pagination.Query[Filter]) (pagination.Page[model.Product], error) {
		res, err := api.List(ctx, ListParams{
			Page:            q.Page,
			Limit:           q.Limit,
			IncludeArchived: q.Filter.IncludeArchived,
			SearchTerm:      q.Filter.SearchTerm,
			StoreID:         optional(q.Filter.StoreID),
			CategoryID:      optional(q.Filter.CategoryID),
		})
		if err != nil {
			return pagination.Page[model.Product]{}, err
		}
		return pagination.Page[model.Product]{Items: res.Products, Pagination: res.Pagination}, nil
	}

	base := []pagination.Option{
		pagination.WithComponent("products"),
		pagination.WithFallbackMessage("list.fallback.products"),
	}
	if selection != nil {
		base = append(base, pagination.WithScope(func(f Filter) Filter {
			if f.StoreID == 0 {
				if id, ok := selection.SelectedStoreID(); ok {
					f.StoreID = id
				}
			}
			return f
		}))
	}
	return pagination.New(fetch, append(base, opts...)...)
}

func optional(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}
