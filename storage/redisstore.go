package storage

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisListStore is a ListStore implementation backed by a single Redis
// instance, using RPUSH and LRANGE on the key's list.
type RedisListStore struct {
	client *redis.Client
}

func NewRedisListStore(client *redis.Client) *RedisListStore {
	return &RedisListStore{client: client}
}

func (s *RedisListStore) Range(ctx context.Context, key string) ([]string, error) {
	entries, err := s.client.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []string{}
	}
	return entries, nil
}

// Append pushes value and reads the whole list back, so the caller sees the
// list as stored, including entries appended concurrently by other writers.
func (s *RedisListStore) Append(ctx context.Context, key string, value string) ([]string, error) {
	if err := s.client.RPush(ctx, key, value).Err(); err != nil {
		return nil, err
	}
	return s.Range(ctx, key)
}

func (s *RedisListStore) Info(ctx context.Context) (string, error) {
	return s.client.Info(ctx).Result()
}

func (s *RedisListStore) Close() error {
	return s.client.Close()
}
