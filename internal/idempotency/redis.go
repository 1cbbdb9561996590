package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "consumer_dedup:"

// RedisStore shares dedup state across instances via SETNX.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &RedisStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *RedisStore) MarkProcessed(ctx context.Context, key string) (bool, error) {
	const op = "idempotency.RedisStore.MarkProcessed"

	claimed, err := s.client.SetNX(ctx, redisKeyPrefix+key, 1, s.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return claimed, nil
}

func (s *RedisStore) Release(ctx context.Context, key string) error {
	const op = "idempotency.RedisStore.Release"

	if err := s.client.Del(ctx, redisKeyPrefix+key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

var _ Store = (*RedisStore)(nil)
