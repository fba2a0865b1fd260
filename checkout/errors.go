package checkout

import "errors"

var (
	ErrEmptyCart    = errors.New("checkout: cart is empty")
	ErrInvalidStore = errors.New("checkout: invalid store")
	ErrInvalidItems = errors.New("checkout: invalid items")
	ErrInProgress   = errors.New("checkout: already in progress")
)
