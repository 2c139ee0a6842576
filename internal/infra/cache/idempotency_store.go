package cache

import (
	"context"
	"encoding/json"
	"time"

	"harvest/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const idempotencyKeyPrefix = "idem:"

// Client is the subset of the go-redis client the store needs.
type Client interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisIdempotencyStore struct {
	client Client
}

// NewRedisIdempotencyStore builds an IdempotencyStore on a Redis client.
// A claim lives under idem:<key>:lock and the finished response under idem:<key>:resp.
func NewRedisIdempotencyStore(client Client) service.IdempotencyStore {
	return &redisIdempotencyStore{client: client}
}

func lockKey(key string) string { return idempotencyKeyPrefix + key + ":lock" }
func respKey(key string) string { return idempotencyKeyPrefix + key + ":resp" }

func (s *redisIdempotencyStore) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, lockKey(key), time.Now().UTC().Format(time.RFC3339Nano), ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to acquire idempotency key")
	}

	return ok, nil
}

func (s *redisIdempotencyStore) Get(ctx context.Context, key string) (*service.IdempotentResponse, error) {
	raw, err := s.client.Get(ctx, respKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read idempotent response")
	}

	var resp service.IdempotentResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode idempotent response")
	}

	return &resp, nil
}

// Save stores the response and keeps the claim for the same ttl so late duplicates replay instead of re-running.
func (s *redisIdempotencyStore) Save(ctx context.Context, key string, resp *service.IdempotentResponse, ttl time.Duration) error {
	raw, err := json.Marshal(resp)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := s.client.Set(ctx, respKey(key), raw, ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store idempotent response")
	}
	if err := s.client.Set(ctx, lockKey(key), "done", ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to extend idempotency claim")
	}

	return nil
}

func (s *redisIdempotencyStore) Release(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, lockKey(key)).Err(); err != nil {
		return errors.Wrap(err, "failed to release idempotency key")
	}

	return nil
}
