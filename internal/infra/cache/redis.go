// Package cache provides Redis-backed stores.
package cache

import (
	"context"
	"log/slog"
	"time"

	"harvest/config"
	"harvest/internal/domain/lifecycle"
	"harvest/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const (
	defaultIdempotencyTTL = 24 * time.Hour
	defaultLockTTL        = 30 * time.Second
)

// IdempotencyParams holds dependencies for the idempotency store, injected by Fx
type IdempotencyParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// IdempotencySettings are the TTLs the HTTP middleware applies per key.
type IdempotencySettings struct {
	ResponseTTL time.Duration
	LockTTL     time.Duration
}

// NewIdempotencySettings reads TTLs from the redis config section.
func NewIdempotencySettings(cfg *config.Config) IdempotencySettings {
	settings := IdempotencySettings{ResponseTTL: defaultIdempotencyTTL, LockTTL: defaultLockTTL}
	if cfg.Redis == nil {
		return settings
	}
	if cfg.Redis.IdempotencyTTL > 0 {
		settings.ResponseTTL = cfg.Redis.IdempotencyTTL
	}
	if cfg.Redis.LockTTL > 0 {
		settings.LockTTL = cfg.Redis.LockTTL
	}

	return settings
}

// NewIdempotencyStore connects to Redis and returns the store.
// It returns nil when Redis is disabled; callers then skip idempotency handling.
func NewIdempotencyStore(params IdempotencyParams) (service.IdempotencyStore, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis disabled, Idempotency-Key handling is off")

		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to connect to redis at %s", cfg.Addr)
	}

	params.Logger.Info("Redis connected", slog.String("addr", cfg.Addr), slog.Int("db", cfg.DB))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return NewRedisIdempotencyStore(client), nil
}
