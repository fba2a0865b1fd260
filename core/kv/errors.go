package kv

import "errors"

var (
	// ErrNotFound is returned when a key has no stored value.
	ErrNotFound = errors.New("key not found")
	// ErrEmptyKey is returned when an operation is called with an empty key.
	ErrEmptyKey = errors.New("key is required")
	// ErrClosed is returned when the store has been closed.
	ErrClosed = errors.New("store is closed")
)
