package redisdb

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shopworks/storefront/fulfillment_service/pkg/logger"
)

type RedisDB struct {
	client *redis.Client
	log    logger.Logger
}

func NewRedisDB(ctx context.Context, log logger.Logger, host string, port int, password string, db int) (*RedisDB, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", host, port),
		Password: password,
		DB:       db,
	})

	rdb := &RedisDB{
		client: client,
		log:    log,
	}

	if err := rdb.pingContext(ctx); err != nil {
		return nil, err
	}

	return rdb, nil
}

func (r *RedisDB) GetClient() *redis.Client {
	return r.client
}

func (r *RedisDB) Close() error {
	return r.client.Close()
}

func (r *RedisDB) pingContext(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()

	status := "up"
	if err := r.client.Ping(ctx).Err(); err != nil {
		status = "down"
		r.log.Error("redis status", logger.String("status", status))
		return err
	}
	r.log.Info("redis status", logger.String("status", status))

	return nil
}
