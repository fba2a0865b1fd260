package auth

import "errors"

var (
	// ErrPersistToken is returned when a fresh token cannot be saved.
	ErrPersistToken = errors.New("auth: failed to persist session token")
)
