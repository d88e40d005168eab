package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"digiwallet/internal/config"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisCache implements Cache on top of a go-redis client.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ Cache = (*RedisCache)(nil)

func NewRedisCache(client *redis.Client, defaultTTL time.Duration) *RedisCache {
	return &RedisCache{
		client: client,
		ttl:    defaultTTL,
	}
}

func (s *RedisCache) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *RedisCache) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *RedisCache) Generation(ctx context.Context, family string) (int64, error) {
	gen, err := s.client.Get(ctx, GenerationKey(family)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get cache generation: %w", err)
	}
	return gen, nil
}

// Bump increments the generation counter and drops the entry it orphaned.
// Counters carry no TTL.
func (s *RedisCache) Bump(ctx context.Context, family string) error {
	gen, err := s.client.Incr(ctx, GenerationKey(family)).Result()
	if err != nil {
		return fmt.Errorf("failed to bump cache generation: %w", err)
	}
	return s.client.Del(ctx, EntryKey(family, gen-1)).Err()
}

func (s *RedisCache) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *RedisCache) Stats() *redis.PoolStats {
	return s.client.PoolStats()
}

// Purge deletes the keys under prefixes and leaves the rest of the database
// alone. It returns the number of keys deleted.
func (s *RedisCache) Purge(ctx context.Context, prefixes ...string) (int, error) {
	return purge(ctx, s.client, prefixes...)
}

// Close closes the Redis client connection
func (s *RedisCache) Close() error {
	return s.client.Close()
}

// keyspace is the part of the redis client purge uses.
type keyspace interface {
	Scan(ctx context.Context, cursor uint64, match string, count int64) *redis.ScanCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

func purge(ctx context.Context, ks keyspace, prefixes ...string) (int, error) {
	deleted := 0
	for _, prefix := range prefixes {
		var cursor uint64
		for {
			keys, next, err := ks.Scan(ctx, cursor, prefix+"*", scanBatch).Result()
			if err != nil {
				return deleted, fmt.Errorf("failed to scan %s keys: %w", prefix, err)
			}
			if len(keys) > 0 {
				if err := ks.Del(ctx, keys...).Err(); err != nil {
					return deleted, fmt.Errorf("failed to delete %s keys: %w", prefix, err)
				}
				deleted += len(keys)
			}
			if next == 0 {
				break
			}
			cursor = next
		}
	}
	return deleted, nil
}
