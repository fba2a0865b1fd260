package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrNilTarget is returned when Load or Parse receives a nil pointer.
var ErrNilTarget = errors.New("config: target must be a non-nil pointer to a struct")

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> reflect.Value (struct copy)
	loadMu     sync.Mutex
)

func loadDotenv() {
	dotenvOnce.Do(func() {
		// Missing .env is the common case outside local development.
		_ = godotenv.Load()
	})
}

// Load populates cfg from the environment. The first successful load of a
// type is cached and copied into later calls for the same type.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}

	typ := reflect.TypeOf(cfg).Elem()
	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	loadMu.Lock()
	defer loadMu.Unlock()

	if cached, ok := cache.Load(typ); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := Parse(cfg); err != nil {
		return err
	}
	cache.Store(typ, *cfg)
	return nil
}

// MustLoad is like Load but panics on error.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}

// Parse populates cfg from the environment without consulting the cache.
func Parse[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilTarget
	}
	loadDotenv()
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("config: parse %T: %w", *cfg, err)
	}
	return nil
}
