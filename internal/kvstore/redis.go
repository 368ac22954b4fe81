// internal/kvstore/redis.go
package kvstore

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/shopstack/storefront-backend/internal/config"
)

// RedisStore implements Store on a single redis database. Values are
// stored as plain strings; prefix scans use SCAN with a MATCH pattern so
// large keyspaces are walked incrementally rather than with KEYS.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(cfg *config.RedisConfig) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr(),
			Password: cfg.Password,
			DB:       cfg.DB,
			PoolSize: cfg.PoolSize,
		}),
	}
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

func (s *RedisStore) ScanPrefix(ctx context.Context, prefix string) (map[string][]byte, error) {
	result := make(map[string][]byte)

	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		data, err := s.client.Get(ctx, key).Bytes()
		if err == redis.Nil {
			// Deleted between SCAN and GET; skip.
			continue
		}
		if err != nil {
			return nil, err
		}
		result[key] = data
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
