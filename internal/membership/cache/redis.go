package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"warden/internal/membership"
)

const redisKeyPrefix = "warden:standing:"

// Redis is a Backend shared between processes. Entries expire after ttl.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (c *Redis) Get(ctx context.Context, key string) (membership.Standing, bool, error) {
	raw, err := c.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return membership.Standing{}, false, nil
	}
	if err != nil {
		return membership.Standing{}, false, err
	}
	var s membership.Standing
	if err := json.Unmarshal(raw, &s); err != nil {
		return membership.Standing{}, false, fmt.Errorf("decode cached standing: %w", err)
	}
	return s, true, nil
}

func (c *Redis) Set(ctx context.Context, key string, standing membership.Standing) error {
	raw, err := json.Marshal(standing)
	if err != nil {
		return fmt.Errorf("encode standing: %w", err)
	}
	return c.client.Set(ctx, redisKeyPrefix+key, raw, c.ttl).Err()
}
