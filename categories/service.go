package categories

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/core/sanitizer"
	"github.com/dmitrymomot/storefront/model"
)

// ListParams filters GET /categories.
type ListParams struct {
	Page            int
	Limit           int
	IncludeArchived bool
	SearchTerm      string
}

// ListResult is one page of categories.
type ListResult struct {
	Categories []model.Category `json:"categories"`
	Pagination model.Pagination `json:"pagination"`
}

// Input is the body of create and update requests.
type Input struct {
	Name        string       `json:"name,omitempty" sanitize:"text"`
	Description string       `json:"description,omitempty" sanitize:"text"`
	Status      model.Status `json:"status,omitempty"`
}

// Lister loads category pages.
type Lister interface {
	List(ctx context.Context, p ListParams) (ListResult, error)
}

// Service calls the /categories endpoints.
type Service struct {
	client *apiclient.Client
}

// NewService creates a Service.
func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List fetches one page of categories.
func (s *Service) List(ctx context.Context, p ListParams) (ListResult, error) {
	q := apiclient.NewQuery().
		Int("page", p.Page).
		Int("limit", p.Limit).
		Bool("includeArchived", p.IncludeArchived).
		String("searchTerm", p.SearchTerm)

	var out ListResult
	err := s.client.Get(ctx, "/categories", q.Values(), &out)
	return out, err
}

// Create adds a category. Text fields are normalized before sending.
func (s *Service) Create(ctx context.Context, in Input) (model.Category, error) {
	var out model.Category
	if err := sanitizer.SanitizeStruct(&in); err != nil {
		return out, err
	}
	err := s.client.Post(ctx, "/categories", in, &out)
	return out, err
}

// Update patches the non-empty fields of in.
func (s *Service) Update(ctx context.Context, id int64, in Input) (model.Category, error) {
	var out model.Category
	if err := sanitizer.SanitizeStruct(&in); err != nil {
		return out, err
	}
	err := s.client.Patch(ctx, fmt.Sprintf("/categories/%d", id), in, &out)
	return out, err
}

// Archive soft-deletes a category.
func (s *Service) Archive(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, fmt.Sprintf("/categories/%d/soft-delete", id), nil, nil)
}

// Restore reverses Archive.
func (s *Service) Restore(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, fmt.Sprintf("/categories/%d/restore", id), nil, nil)
}
