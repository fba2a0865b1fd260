package storefront

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/storefront/core/kv"
	"github.com/dmitrymomot/storefront/integration/database/redis"
	"github.com/dmitrymomot/storefront/integration/kv/sqlite"

	kvredis "github.com/dmitrymomot/storefront/integration/kv/redis"
)

const deviceIDKey = "deviceId"

// backend is an opened local store with its lifecycle hooks.
type backend struct {
	store kv.Store
	close func() error
	ping  func(context.Context) error
}

func openStore(ctx context.Context, cfg Config) (backend, error) {
	switch cfg.Storage {
	case "", StorageMemory:
		m := kv.NewMemory()
		return backend{store: m, close: m.Close}, nil
	case StorageSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return backend{}, fmt.Errorf("storefront: open sqlite store: %w", err)
		}
		return backend{store: s, close: s.Close, ping: s.Ping}, nil
	case StorageRedis:
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return backend{}, fmt.Errorf("storefront: connect redis: %w", err)
		}
		return backend{
			store: kvredis.New(client, kvredis.WithPrefix(cfg.AppName+":")),
			close: client.Close,
			ping:  redis.Healthcheck(client),
		}, nil
	default:
		return backend{}, fmt.Errorf("%w: %q", ErrUnknownStorage, cfg.Storage)
	}
}

// deviceID returns the configured id, or the id generated on first run.
func deviceID(ctx context.Context, store kv.Store, configured string) (string, error) {
	if configured != "" {
		return configured, nil
	}
	id, err := store.Get(ctx, deviceIDKey)
	if err == nil && id != "" {
		return id, nil
	}
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		return "", fmt.Errorf("storefront: read device id: %w", err)
	}

	id = uuid.NewString()
	if err := store.Set(ctx, deviceIDKey, id); err != nil {
		return "", fmt.Errorf("storefront: save device id: %w", err)
	}
	return id, nil
}
