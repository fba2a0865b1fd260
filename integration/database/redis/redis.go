package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cenkalti/backoff/v4"
	"github.com/redis/go-redis/v9"
)

// Connect creates a Redis client and waits until it answers a ping.
// The ping is retried with exponential backoff starting at cfg.RetryInterval,
// at most cfg.RetryAttempts times, bounded by cfg.ConnectTimeout.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	if strings.TrimSpace(cfg.ConnectionURL) == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(cfg.ConnectionURL, "redis://") && !strings.HasPrefix(cfg.ConnectionURL, "rediss://") {
		return nil, fmt.Errorf("%w: unsupported scheme", ErrFailedToParseRedisConnString)
	}

	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}

	client := redis.NewClient(opts)

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	if err := backoff.Retry(func() error {
		return client.Ping(ctx).Err()
	}, newBackoff(ctx, cfg)); err != nil {
		_ = client.Close()
		return nil, errors.Join(ErrRedisNotReady, err)
	}

	return client, nil
}

// Healthcheck returns a function that pings Redis.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

func newBackoff(ctx context.Context, cfg Config) backoff.BackOff {
	exp := backoff.NewExponentialBackOff()
	if cfg.RetryInterval > 0 {
		exp.InitialInterval = cfg.RetryInterval
	}
	exp.MaxElapsedTime = 0

	attempts := cfg.RetryAttempts
	if attempts < 0 {
		attempts = 0
	}
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(attempts)), ctx)
}
