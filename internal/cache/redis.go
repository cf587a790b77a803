// Package cache holds the redis-backed idempotency guard for operations that
// must not apply twice, such as deposit confirmations and keyed bonus grants.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vkarpale/wagerhall/internal/config"
)

type RedisService struct {
	client redis.Cmdable
}

func NewRedisService(cfg *config.Config) (*RedisService, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       cfg.RedisDB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return &RedisService{client: client}, nil
}

// NewWithClient is used by tests to inject a mock client.
func NewWithClient(client redis.Cmdable) *RedisService {
	return &RedisService{client: client}
}

// Acquire claims key for ttl. It returns false when another call already
// holds the key, which callers treat as a duplicate request.
func (s *RedisService) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return s.client.SetNX(ctx, key, 1, ttl).Result()
}

// Release frees a claimed key so a failed operation can be retried.
func (s *RedisService) Release(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}
