package auth

import (
	"context"

	"github.com/dmitrymomot/storefront/core/apiclient"
	"github.com/dmitrymomot/storefront/model"
)

// Session is the payload of login and register responses.
type Session struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// API is the subset of the backend the manager talks to.
type API interface {
	Login(ctx context.Context, creds model.LoginCredentials) (Session, error)
	Register(ctx context.Context, data model.RegisterData) (Session, error)
	Me(ctx context.Context) (model.User, error)
}

// Service calls the /auth endpoints.
type Service struct {
	client *apiclient.Client
}

// NewService creates a Service.
func NewService(client *apiclient.Client) *Service {
	return &Service{client: client}
}

// Login posts credentials to /auth/login.
func (s *Service) Login(ctx context.Context, creds model.LoginCredentials) (Session, error) {
	var out Session
	err := s.client.Post(ctx, "/auth/login", creds, &out)
	return out, err
}

// Register posts a new account to /auth/register.
func (s *Service) Register(ctx context.Context, data model.RegisterData) (Session, error) {
	var out Session
	err := s.client.Post(ctx, "/auth/register", data, &out)
	return out, err
}

// Me fetches the profile behind the current bearer token.
func (s *Service) Me(ctx context.Context) (model.User, error) {
	var out struct {
		User model.User `json:"user"`
	}
	err := s.client.Get(ctx, "/auth/me", nil, &out)
	return out.User, err
}
