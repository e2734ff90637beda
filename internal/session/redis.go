package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPersistence stores slots as plain Redis strings without expiry
type RedisPersistence struct {
	client *redis.Client
	prefix string
}

// NewRedisPersistence creates a Redis-backed persistence. Keys are stored as prefix+key.
func NewRedisPersistence(client *redis.Client, prefix string) *RedisPersistence {
	return &RedisPersistence{client: client, prefix: prefix}
}

// Load retrieves the payload stored under key
func (r *RedisPersistence) Load(ctx context.Context, key string) ([]byte, error) {
	payload, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}
	return payload, nil
}

// Save stores payload under key
func (r *RedisPersistence) Save(ctx context.Context, key string, payload []byte) error {
	if err := r.client.Set(ctx, r.prefix+key, payload, 0).Err(); err != nil {
		return fmt.Errorf("failed to set session in redis: %w", err)
	}
	return nil
}

// Delete removes key
func (r *RedisPersistence) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}
