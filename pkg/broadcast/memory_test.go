package broadcast_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/pkg/broadcast"
)

func TestMemoryBroadcaster(t *testing.T) {
	t.Parallel()

	t.Run("fan out", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[string](4)
		defer b.Close()

		ctx := context.Background()
		s1 := b.Subscribe(ctx)
		s2 := b.Subscribe(ctx)
		require.Equal(t, 2, b.SubscriberCount())

		require.NoError(t, b.Broadcast(ctx, broadcast.Message[string]{Data: "hi"}))

		assert.Equal(t, "hi", (<-s1.Receive(ctx)).Data)
		assert.Equal(t, "hi", (<-s2.Receive(ctx)).Data)
	})

	t.Run("slow consumer drops", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[int](1)
		defer b.Close()

		ctx := context.Background()
		sub := b.Subscribe(ctx)
		require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 1}))
		require.NoError(t, b.Broadcast(ctx, broadcast.Message[int]{Data: 2}))

		assert.Equal(t, 1, (<-sub.Receive(ctx)).Data)
		select {
		case msg := <-sub.Receive(ctx):
			t.Fatalf("unexpected message %v", msg.Data)
		default:
		}
	})

	t.Run("context cancel unsubscribes", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[int](1)
		defer b.Close()

		ctx, cancel := context.WithCancel(context.Background())
		sub := b.Subscribe(ctx)
		cancel()

		require.Eventually(t, func() bool { return b.SubscriberCount() == 0 }, time.Second, 5*time.Millisecond)
		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
	})

	t.Run("close", func(t *testing.T) {
		t.Parallel()

		b := broadcast.NewMemoryBroadcaster[int](1)
		sub := b.Subscribe(context.Background())
		require.NoError(t, b.Close())
		require.NoError(t, b.Close())

		_, ok := <-sub.Receive(context.Background())
		assert.False(t, ok)
		assert.ErrorIs(t, b.Broadcast(context.Background(), broadcast.Message[int]{}), broadcast.ErrBroadcasterClosed)

		late := b.Subscribe(context.Background())
		_, ok = <-late.Receive(context.Background())
		assert.False(t, ok)
	})
}
