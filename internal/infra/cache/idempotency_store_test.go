package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"harvest/config"
	"harvest/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRedis keeps values in memory and ignores expirations.
type fakeRedis struct {
	mu   sync.Mutex
	data map[string]string
	ttls map[string]time.Duration
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{data: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (f *fakeRedis) SetNX(_ context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.data[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.data[key] = toString(value)
	f.ttls[key] = expiration

	return redis.NewBoolResult(true, nil)
}

func (f *fakeRedis) Set(_ context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = toString(value)
	f.ttls[key] = expiration

	return redis.NewStatusResult("OK", nil)
}

func (f *fakeRedis) Get(_ context.Context, key string) *redis.StringCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}

	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Del(_ context.Context, keys ...string) *redis.IntCmd {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, k := range keys {
		if _, ok := f.data[k]; ok {
			delete(f.data, k)
			n++
		}
	}

	return redis.NewIntResult(n, nil)
}

func toString(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return ""
	}
}

func TestRedisIdempotencyStore_AcquireOnce(t *testing.T) {
	ctx := context.Background()
	store := NewRedisIdempotencyStore(newFakeRedis())

	ok, err := store.Acquire(ctx, "order-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Acquire(ctx, "order-1", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisIdempotencyStore_SaveAndGet(t *testing.T) {
	ctx := context.Background()
	fake := newFakeRedis()
	store := NewRedisIdempotencyStore(fake)

	resp, err := store.Get(ctx, "order-2")
	require.NoError(t, err)
	assert.Nil(t, resp)

	want := &service.IdempotentResponse{StatusCode: 201, ContentType: "application/json", Body: []byte(`{"id":"x"}`)}
	require.NoError(t, store.Save(ctx, "order-2", want, time.Hour))

	got, err := store.Get(ctx, "order-2")
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, time.Hour, fake.ttls["idem:order-2:lock"])
}

func TestRedisIdempotencyStore_ReleaseAllowsRetry(t *testing.T) {
	ctx := context.Background()
	store := NewRedisIdempotencyStore(newFakeRedis())

	ok, err := store.Acquire(ctx, "order-3", time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, store.Release(ctx, "order-3"))

	ok, err = store.Acquire(ctx, "order-3", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestNewIdempotencySettings(t *testing.T) {
	defaults := NewIdempotencySettings(&config.Config{})
	assert.Equal(t, defaultIdempotencyTTL, defaults.ResponseTTL)
	assert.Equal(t, defaultLockTTL, defaults.LockTTL)

	custom := NewIdempotencySettings(&config.Config{Redis: &config.RedisConfig{IdempotencyTTL: time.Hour, LockTTL: 5 * time.Second}})
	assert.Equal(t, time.Hour, custom.ResponseTTL)
	assert.Equal(t, 5*time.Second, custom.LockTTL)
}
