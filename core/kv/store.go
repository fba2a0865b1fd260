package kv

import (
	"context"
	"strings"
)

// Store persists string values under string keys.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value stored under key or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// Scoped returns a Store that prefixes every key with the given device scope.
// An empty scope returns store unchanged.
func Scoped(store Store, scope string) Store {
	scope = strings.TrimSpace(scope)
	if scope == "" {
		return store
	}
	return &scopedStore{store: store, prefix: "device:" + scope + ":"}
}

type scopedStore struct {
	store  Store
	prefix string
}

func (s *scopedStore) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}
	return s.store.Get(ctx, s.prefix+key)
}

func (s *scopedStore) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.store.Set(ctx, s.prefix+key, value)
}

func (s *scopedStore) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}
	return s.store.Delete(ctx, s.prefix+key)
}
