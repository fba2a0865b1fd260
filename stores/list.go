package stores

import (
	"context"

	"github.com/dmitrymomot/storefront/core/pagination"
	"github.com/dmitrymomot/storefront/model"
)

// Filter narrows the store list.
type Filter struct {
	IncludeArchived bool
	SearchTerm      string
	IsAdmin         bool
}

// NewList creates a paginated store list.
func NewList(api Lister, opts ...pagination.Option) *pagination.List[model.Store, Filter] {
	fetch := func(ctx context.Context, q pagination.Query[Filter]) (pagination.Page[model.Store], error) {
		res, err := api.List(ctx, ListParams{
			Page:            q.Page,
			Limit:           q.Limit,
			IncludeArchived: q.Filter.IncludeArchived,
			SearchTerm:      q.Filter.SearchTerm,
			IsAdmin:         q.Filter.IsAdmin,
		})
		if err != nil {
			return pagination.Page[model.Store]{}, err
		}
		return pagination.Page[model.Store]{Items: res.Stores, Pagination: res.Pagination}, nil
	}

	base := []pagination.Option{
		pagination.WithComponent("stores"),
		pagination.WithFallbackMessage("list.fallback.stores"),
	}
	return pagination.New(fetch, append(base, opts...)...)
}
