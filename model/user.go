package model

import "time"

// Role is the authorization role of a user.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// Status is the lifecycle status shared by users, products, categories and stores.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// User is the authenticated account as returned by the auth endpoints.
type User struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	ApellidoPaterno string    `json:"apellido_paterno"`
	ApellidoMaterno string    `json:"apellido_materno"`
	Email           string    `json:"email"`
	Role            Role      `json:"role"`
	Status          Status    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// IsAdmin reports whether the user has the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// LoginCredentials is the body of POST /auth/login.
type LoginCredentials struct {
	Email    string `json:"email" sanitize:"email" validate:"required;email"`
	Password string `json:"password" validate:"required"`
}

// RegisterData is the body of POST /auth/register.
// Role is optional; the backend defaults it to customer.
type RegisterData struct {
	Name            string `json:"name" sanitize:"text" validate:"required;min:3;max:100"`
	ApellidoPaterno string `json:"apellido_paterno" sanitize:"text" validate:"required;min:3;max:100"`
	ApellidoMaterno string `json:"apellido_materno" sanitize:"text" validate:"required;min:3;max:100"`
	Email           string `json:"email" sanitize:"email" validate:"required;email;max:150"`
	Password        string `json:"password" validate:"required;min:6;max:200"`
	Role            Role   `json:"role,omitempty" validate:"in:customer,admin"`
}
