package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/storefront/core/kv"
)

// Store is a Redis-backed kv.Store.
type Store struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

var _ kv.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithPrefix namespaces every key with prefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// WithTTL sets an expiration on every written key. Zero means no expiration.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// New creates a Store over an existing Redis client.
func New(client redis.Cmdable, opts ...Option) *Store {
	s := &Store{client: client}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get implements kv.Store.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", kv.ErrEmptyKey
	}
	v, err := s.client.Get(ctx, s.prefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", kv.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get %q: %w", key, err)
	}
	return v, nil
}

// Set implements kv.Store.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return kv.ErrEmptyKey
	}
	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete implements kv.Store.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return kv.ErrEmptyKey
	}
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
