package stores

import (
	"context"
	"strconv"

	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/core/sanitizer"
	"github.com/dmitrymomot/storefront/model"
)

// ListParams filters GET /stores.
type ListParams struct {
	Page            int
	Limit           int
	IncludeArchived bool
	SearchTerm      string
	IsAdmin         bool
}

// ListResult is one page of stores.
type ListResult struct {
	Stores     []model.Store    `json:"stores"`
	Pagination model.Pagination `json:"pagination"`
}

// Input is the body of create and update requests.
type Input struct {
	Name    string       `json:"name,omitempty" sanitize:"text"`
	Address *string      `json:"address,omitempty"`
	Status  model.Status `json:"status,omitempty"`
}

// Lister loads store pages.
type Lister interface {
	List(ctx context.Context, p ListParams) (ListResult, error)
}

// Service calls the /stores endpoints.
type Service struct {
	client *apiclient.Client
}

// NewService creates a Service.
func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// List fetches one page of stores.
func (s *Service) List(ctx context.Context, p ListParams) (ListResult, error) {
	q := apiclient.NewQuery().
		Int("page", p.Page).
		Int("limit", p.Limit).
		Bool("includeArchived", p.IncludeArchived).
		String("searchTerm", p.SearchTerm).
		Bool("isAdmin", p.IsAdmin)

	var out ListResult
	err := s.client.Get(ctx, "/stores", q.Values(), &out)
	return out, err
}

// Create adds a store. Name is normalized before sending.
func (s *Service) Create(ctx context.Context, in Input) (model.Store, error) {
	var out model.Store
	if err := sanitizer.SanitizeStruct(&in); err != nil {
		return out, err
	}
	err := s.client.Post(ctx, "/stores", in, &out)
	return out, err
}

// Update patches the non-empty fields of in.
func (s *Service) Update(ctx context.Context, id int64, in Input) (model.Store, error) {
	var out model.Store
	if err := sanitizer.SanitizeStruct(&in); err != nil {
		return out, err
	}
	err := s.client.Patch(ctx, "/stores/"+strconv.FormatInt(id, 10), in, &out)
	return out, err
}

// Archive soft-deletes a store.
func (s *Service) Archive(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, "/stores/"+strconv.FormatInt(id, 10)+"/soft-delete", nil, nil)
}

// Restore reverses Archive.
func (s *Service) Restore(ctx context.Context, id int64) error {
	return s.client.Patch(ctx, "/stores/"+strconv.FormatInt(id, 10)+"/restore", nil, nil)
}
