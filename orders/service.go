package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/core/validator"
	"github.com/dmitrymomot/storefront/model"
)

// ListParams filters GET /orders. Nil pointers and empty strings are omitted.
type ListParams struct {
	Page       int
	Limit      int
	UserID     *int64
	StoreID    *int64
	Status     model.OrderStatus
	SearchTerm string
	StartDate  *time.Time
	EndDate    *time.Time
}

// ListResult is one page of orders.
type ListResult struct {
	Orders     []model.Order    `json:"orders"`
	Pagination model.Pagination `json:"pagination"`
}

// Lister loads order pages.
type Lister interface {
	List(ctx context.Context, p ListParams) (ListResult, error)
}

// Creator places orders.
type Creator interface {
	Create(ctx context.Context, storeID int64, items []model.OrderLine) (model.Order, error)
}

type createRequest struct {
	StoreID int64             `json:"store_id" validate:"positive"`
	Items   []model.OrderLine `json:"items" validate:"required"`
}

// Service calls the /orders endpoints.
type Service struct {
	client *apiclient.Client
}

// NewService creates a Service.
func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List fetches one page of orders. Unset filters are omitted from the query.
func (s *Service) List(ctx context.Context, p ListParams) (ListResult, error) {
	q := apiclient.NewQuery().
		Int("page", p.Page).
		Int("limit", p.Limit).
		Int64("userId", p.UserID).
		Int64("storeId", p.StoreID).
		String("status", string(p.Status)).
		String("searchTerm", p.SearchTerm).
		Date("startDate", p.StartDate).
		Date("endDate", p.EndDate)

	var out ListResult
	err := s.client.Get(ctx, "/orders", q.Values(), &out)
	return out, err
}

// Get fetches one order with its items.
func (s *Service) Get(ctx context.Context, id int64) (model.Order, error) {
	var out struct {
		Order model.Order `json:"order"`
	}
	err := s.client.Get(ctx, fmt.Sprintf("/orders/%d", id), nil, &out)
	return out.Order, err
}

// Create places an order for the authenticated user in storeID. Lines
// without a positive product id or quantity are rejected locally.
func (s *Service) Create(ctx context.Context, storeID int64, items []model.OrderLine) (model.Order, error) {
	if len(items) == 0 {
		return model.Order{}, ErrNoItems
	}
	req := createRequest{StoreID: storeID, Items: items}
	if err := validator.ValidateStruct(&req); err != nil {
		return model.Order{}, err
	}
	var out struct {
		Order model.Order `json:"order"`
	}
	err := s.client.Post(ctx, "/orders", req, &out)
	return out.Order, err
}

// UpdateStatus moves an order to status. Unknown statuses are rejected
// without a request.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status model.OrderStatus) (model.Order, error) {
	if !status.Valid() {
		return model.Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	var out model.Order
	err := s.client.Patch(ctx, fmt.Sprintf("/orders/%d/status", id), map[string]model.OrderStatus{"status": status}, &out)
	return out, err
}
