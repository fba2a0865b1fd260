package products

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/model"
)

// ListParams filters GET /products.
type ListParams struct {
	Page            int
	Limit           int
	IncludeArchived bool
	SearchTerm      string
	StoreID         *int64
	CategoryID      *int64
}

// ListResult is one page of products.
type ListResult struct {
	Products   []model.Product  `json:"products"`
	Pagination model.Pagination `json:"pagination"`
}

// UpdateInput is the JSON body of PATCH /products/:id.
type UpdateInput struct {
	Name        string           `json:"name,omitempty"`
	Description string           `json:"description,omitempty"`
	Price       *decimal.Decimal `json:"price,omitempty"`
	SKU         string           `json:"sku,omitempty"`
	CategoryID  *int64           `json:"category_id,omitempty"`
	Status      model.Status     `json:"status,omitempty"`
}

// StockChange adjusts a product's stock in one store.
type StockChange struct {
	StoreID int64  `json:"store_id"`
	Change  int    `json:"change"`
	Reason  string `json:"reason"`
}

// Lister loads product pages.
type Lister interface {
	List(ctx context.Context, p ListParams) (ListResult, error)
}

// Service calls the /products endpoints.
type Service struct {
	client *apiclient.Client
}

// NewService creates a Service.
func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List fetches one page of products. With StoreID set, stock is that store's.
func (s *Service) List(ctx context.Context, p ListParams) (ListResult, error) {
	q := apiclient.NewQuery().
		Int("page", p.Page).
		Int("limit", p.Limit).
		Bool("includeArchived", p.IncludeArchived).
		String("searchTerm", p.SearchTerm).
		Int64("storeId", p.StoreID).
		Int64("categoryId", p.CategoryID)

	var out ListResult
	err := s.client.Get(ctx, "/products", q.Values(), &out)
	return out, err
}

// Get fetches one product. Admins get the detail view with stock per store.
func (s *Service) Get(ctx context.Context, id int64, storeID *int64, admin bool) (model.Product, error) {
	path := fmt.Sprintf("/products/%d", id)
	if admin {
		path += "/admin-detail"
	}
	var out struct {
		Product model.Product `json:"product"`
	}
	err := s.client.Get(ctx, path, apiclient.NewQuery().Int64("storeId", storeID).Values(), &out)
	return out.Product, err
}

// Update patches a product.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (model.Product, error) {
	var out struct {
		Product model.Product `json:"product"`
	}
	err := s.client.Patch(ctx, fmt.Sprintf("/products/%d", id), in, &out)
	return out.Product, err
}

// Archive soft-deletes a product.
func (s *Service) Archive(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, fmt.Sprintf("/products/%d/soft-delete", id), nil, nil)
}

// Restore reverses Archive.
func (s *Service) Restore(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, fmt.Sprintf("/products/%d/restore", id), nil, nil)
}

// UpdateStock applies a stock change and returns the updated product.
func (s *Service) UpdateStock(ctx context.Context, id int64, change StockChange) (model.Product, error) {
	var out model.Product
	err := s.client.Patch(ctx, fmt.Sprintf("/products/%d/stock", id), change, &out)
	return out, err
}

// RemoveImage deletes an image from a product.
func (s *Service) RemoveImage(ctx context.Context, productID, imageID int64) error {
	return s.client.Delete(ctx, fmt.Sprintf("/products/%d/images/%d", productID, imageID), nil)
}

// SetThumbnail marks an existing image as the product thumbnail.
func (s *Service) SetThumbnail(ctx context.Context, productID, imageID int64) error {
	return s.client.Patch(ctx, fmt.Sprintf("/products/%d/images/%d/thumbnail", productID, imageID), nil, nil)
}
