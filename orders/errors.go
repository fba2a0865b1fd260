package orders

import "errors"

var (
	ErrInvalidStatus = errors.New("orders: invalid status")
	ErrNoItems       = errors.New("orders: no items")
)
