package cart

import "errors"

var (
	// ErrNotAuthenticated is returned by mutations while signed out.
	ErrNotAuthenticated = errors.New("cart: authentication required")

	// ErrInvalidQuantity is returned by Add for non-positive quantities.
	ErrInvalidQuantity = errors.New("cart: quantity must be positive")
)
