package categories

import (
	"context"

	"github.com/dmitrymomot/storefront/core/pagination"
	"github.com/dmitrymomot/storefront/model"
)

// Filter narrows the category list.
type Filter struct {
	IncludeArchived bool
	SearchTerm      string
}

// NewList creates a paginated category list.
func NewList(api Lister, opts ...pagination.Option) *pagination.List[model.Category, Filter] {
	fetch := func(ctx context.Context, q pagination.Query[Filter]) (pagination.Page[model.Category], error) {
		res, err := api.List(ctx, ListParams{
			Page:            q.Page,
			Limit:           q.Limit,
			IncludeArchived: q.Filter.IncludeArchived,
			SearchTerm:      q.Filter.SearchTerm,
		})
		if err != nil {
			return pagination.Page[model.Category]{}, err
		}
		return pagination.Page[model.Category]{Items: res.Categories, Pagination: res.Pagination}, nil
	}

	base := []pagination.Option{
		pagination.WithComponent("categories"),
		pagination.WithFallbackMessage("list.fallback.categories"),
	}
	return pagination.New(fetch, append(base, opts...)...)
}
