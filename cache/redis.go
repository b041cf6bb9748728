package cache

import (
	"context"
	"fmt"
	"strconv"

	"github.com/go-redis/redis/v8"

	"geohash-service/config"
)

// usageKey is the hash holding one call counter per operation.
const usageKey = "geohash:usage"

// UsageStore counts API operations in Redis so totals survive restarts and
// are shared between instances.
type UsageStore struct {
	client *redis.Client
}

// NewUsageStore connects to Redis and checks the connection.
func NewUsageStore(ctx context.Context, cfg config.RedisConfig) (*UsageStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Addr, err)
	}
	return &UsageStore{client: client}, nil
}

// Incr adds one call to operation.
func (s *UsageStore) Incr(ctx context.Context, operation string) error {
	return s.client.HIncrBy(ctx, usageKey, operation, 1).Err()
}

// Counts returns the call totals per operation.
func (s *UsageStore) Counts(ctx context.Context) (map[string]int64, error) {
	raw, err := s.client.HGetAll(ctx, usageKey).Result()
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(raw))
	for op, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("usage counter %s: %w", op, err)
		}
		counts[op] = n
	}
	return counts, nil
}

// Close releases the Redis connection pool.
func (s *UsageStore) Close() error {
	return s.client.Close()
}
