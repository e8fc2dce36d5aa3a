package storage

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis persists JSON documents in Redis with an optional TTL.
type Redis struct {
	Client *redis.Client
	TTL    time.Duration
}

// SaveJSON serialises v and stores it under key with the configured TTL.
func (r *Redis) SaveJSON(ctx context.Context, key string, v any) error {
	if r == nil || r.Client == nil || key == "" {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.Client.Set(ctx, key, data, r.TTL).Err()
}

// LoadJSON unmarshals the value at key into dst, reporting existence.
func (r *Redis) LoadJSON(ctx context.Context, key string, dst any) (bool, error) {
	if r == nil || r.Client == nil || key == "" {
		return false, nil
	}
	data, err := r.Client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes the key.
func (r *Redis) Delete(ctx context.Context, key string) error {
	if r == nil || r.Client == nil || key == "" {
		return nil
	}
	return r.Client.Del(ctx, key).Err()
}
