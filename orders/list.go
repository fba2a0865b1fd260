package orders

import (
	"context"
	"time"

	"github.com/dmitrymomot/storefront/core/pagination"
	"github.com/dmitrymomot/storefront/model"
)

// StatusAll disables the status filter.
const StatusAll = "all"

// Filter narrows the order list. Zero values mean "any".
type Filter struct {
	Status     string
	SearchTerm string
	StoreID    int64
	UserID     int64
	StartDate  time.Time
	EndDate    time.Time
}

// Viewer supplies the signed-in user. *auth.Manager satisfies it.
type Viewer interface {
	CurrentUser() (model.User, bool)
}

// NewList creates an order list. When viewer reports a customer, the user
// filter is forced to that customer's id on every fetch.
func NewList(api Lister, viewer Viewer, opts ...pagination.Option) *pagination.List[model.Order, Filter] {
	fetch := func(ctx context.Context, q pagination.Query[Filter]) (pagination.Page[model.Order], error) {
		res, err := api.List(ctx, params(q))
		if err != nil {
			return pagination.Page[model.Order]{}, err
		}
		return pagination.Page[model.Order]{Items: res.Orders, Pagination: res.Pagination}, nil
	}

	base := []pagination.Option{
		pagination.WithComponent("orders"),
		pagination.WithFallbackMessage("list.fallback.orders"),
		pagination.WithFilter(Filter{Status: StatusAll}),
	}
	if viewer != nil {
		base = append(base, pagination.WithScope(func(f Filter) Filter {
			if u, ok := viewer.CurrentUser(); ok && !u.IsAdmin() {
				f.UserID = u.ID
			}
			return f
		}))
	}
	return pagination.New(fetch, append(base, opts...)...)
}

func params(q pagination.Query[Filter]) ListParams {
	p := ListParams{
		Page:       q.Page,
		Limit:      q.Limit,
		SearchTerm: q.Filter.SearchTerm,
		UserID:     optionalID(q.Filter.UserID),
		StoreID:    optionalID(q.Filter.StoreID),
		StartDate:  optionalDate(q.Filter.StartDate),
		EndDate:    optionalDate(q.Filter.EndDate),
	}
	if q.Filter.Status != StatusAll {
		p.Status = model.OrderStatus(q.Filter.Status)
	}
	return p
}

func optionalID(id int64) *int64 {
	if id == 0 {
		return nil
	}
	return &id
}

func optionalDate(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
