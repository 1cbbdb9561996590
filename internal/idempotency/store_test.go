package idempotency

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore(0, 0)
	ctx := context.Background()

	claimed, err := store.MarkProcessed(ctx, "order_consumer:ORD-1A2B3C4D")
	require.NoError(t, err)
	require.True(t, claimed)

	claimed, err = store.MarkProcessed(ctx, "order_consumer:ORD-1A2B3C4D")
	require.NoError(t, err)
	require.False(t, claimed)

	claimed, err = store.MarkProcessed(ctx, "loyalty_consumer:ORD-1A2B3C4D")
	require.NoError(t, err)
	require.True(t, claimed)

	require.NoError(t, store.Release(ctx, "order_consumer:ORD-1A2B3C4D"))

	claimed, err = store.MarkProcessed(ctx, "order_consumer:ORD-1A2B3C4D")
	require.NoError(t, err)
	require.True(t, claimed)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, time.Hour)
	ctx := context.Background()

	claimed, err := store.MarkProcessed(ctx, "order_consumer:ORD-1A2B3C4D")
	require.NoError(t, err)
	require.True(t, claimed)

	claimed, err = store.MarkProcessed(ctx, "order_consumer:ORD-1A2B3C4D")
	require.NoError(t, err)
	require.False(t, claimed)

	require.Positive(t, mr.TTL(redisKeyPrefix+"order_consumer:ORD-1A2B3C4D"))

	require.NoError(t, store.Release(ctx, "order_consumer:ORD-1A2B3C4D"))

	claimed, err = store.MarkProcessed(ctx, "order_consumer:ORD-1A2B3C4D")
	require.NoError(t, err)
	require.True(t, claimed)
}

func TestRedisStoreTTLExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, time.Minute)
	ctx := context.Background()

	claimed, err := store.MarkProcessed(ctx, "k")
	require.NoError(t, err)
	require.True(t, claimed)

	mr.FastForward(2 * time.Minute)

	claimed, err = store.MarkProcessed(ctx, "k")
	require.NoError(t, err)
	require.True(t, claimed)
}
