package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/kv"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	t.Run("set get delete", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		store := kv.NewMemory()

		_, err := store.Get(ctx, "jwtToken")
		assert.ErrorIs(t, err, kv.ErrNotFound)

		require.NoError(t, store.Set(ctx, "jwtToken", "abc"))
		v, err := store.Get(ctx, "jwtToken")
		require.NoError(t, err)
		assert.Equal(t, "abc", v)

		require.NoError(t, store.Delete(ctx, "jwtToken"))
		_, err = store.Get(ctx, "jwtToken")
		assert.ErrorIs(t, err, kv.ErrNotFound)

		// deleting a missing key is fine
		require.NoError(t, store.Delete(ctx, "jwtToken"))
	})

	t.Run("rejects empty key", func(t *testing.T) {
		t.Parallel()

		store := kv.NewMemory()
		assert.ErrorIs(t, store.Set(context.Background(), "", "x"), kv.ErrEmptyKey)
	})

	t.Run("respects cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		store := kv.NewMemory()
		assert.ErrorIs(t, store.Set(ctx, "k", "v"), context.Canceled)
	})

	t.Run("closed store", func(t *testing.T) {
		t.Parallel()

		store := kv.NewMemory()
		require.NoError(t, store.Close())
		_, err := store.Get(context.Background(), "k")
		assert.ErrorIs(t, err, kv.ErrClosed)
	})
}

func TestScoped(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	base := kv.NewMemory()

	phone := kv.Scoped(base, "phone")
	tablet := kv.Scoped(base, "tablet")

	require.NoError(t, phone.Set(ctx, "selectedStoreId", "3"))
	require.NoError(t, tablet.Set(ctx, "selectedStoreId", "7"))

	v, err := phone.Get(ctx, "selectedStoreId")
	require.NoError(t, err)
	assert.Equal(t, "3", v)

	v, err = tablet.Get(ctx, "selectedStoreId")
	require.NoError(t, err)
	assert.Equal(t, "7", v)

	assert.Equal(t, map[string]string{
		"device:phone:selectedStoreId":  "3",
		"device:tablet:selectedStoreId": "7",
	}, base.Snapshot())

	assert.Same(t, base, kv.Scoped(base, "  "))
}
