package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/config"
)

type parseConfig struct {
	BaseURL string        `env:"CONFIG_TEST_API_URL" envDefault:"http://localhost:5000/api/v1"`
	Timeout time.Duration `env:"CONFIG_TEST_TIMEOUT" envDefault:"30s"`
}

type requiredConfig struct {
	Secret string `env:"CONFIG_TEST_REQUIRED_SECRET,required"`
}

type cachedConfig struct {
	Name string `env:"CONFIG_TEST_CACHED_NAME" envDefault:"first"`
}

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		var cfg parseConfig
		require.NoError(t, config.Parse(&cfg))
		assert.Equal(t, "http://localhost:5000/api/v1", cfg.BaseURL)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("CONFIG_TEST_API_URL", "https://shop.example.com/api/v1")
		t.Setenv("CONFIG_TEST_TIMEOUT", "5s")

		var cfg parseConfig
		require.NoError(t, config.Parse(&cfg))
		assert.Equal(t, "https://shop.example.com/api/v1", cfg.BaseURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
	})

	t.Run("missing required", func(t *testing.T) {
		var cfg requiredConfig
		assert.Error(t, config.Parse(&cfg))
	})

	t.Run("nil target", func(t *testing.T) {
		assert.ErrorIs(t, config.Parse[parseConfig](nil), config.ErrNilTarget)
	})
}

func TestLoadCachesPerType(t *testing.T) {
	t.Setenv("CONFIG_TEST_CACHED_NAME", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	assert.Equal(t, "first", first.Name)

	t.Setenv("CONFIG_TEST_CACHED_NAME", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)
}

func TestMustLoadPanics(t *testing.T) {
	assert.Panics(t, func() {
		config.MustLoad[requiredConfig](nil)
	})
}
