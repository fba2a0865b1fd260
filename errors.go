package storefront

import "errors"

var (
	ErrUnknownStorage = errors.New("storefront: unknown storage driver")
	ErrNilOption      = errors.New("storefront: option value cannot be nil")
)
