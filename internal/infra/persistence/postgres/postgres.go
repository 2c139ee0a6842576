package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"harvest/config"
	"harvest/internal/domain/lifecycle"
	"harvest/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary connection (plus read replicas) and registers its lifecycle hooks.
func New(params Params) (*gorm.DB, error) {
	dbCfg := params.Config.Database

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Multi-step writes go through TransactionManager; single statements need no implicit tx.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormLogger(params.Logger, params.Config.Env.Debug, dbCfg.SlowQueryThreshold),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{logger: params.Logger, warnAfter: dbCfg.PoolWaitWarnThreshold}
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}
			if dbCfg.AutoMigrate {
				if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
					return errors.Wrap(err, "failed to migrate marketplace tables")
				}
			}

			go monitor.run(monitorCtx, sqlDB, dbCfg.PoolMonitorInterval)

			params.Logger.Info("Postgres connected",
				slog.Int("replicas", len(params.Config.Postgres.Replicas)),
				slog.Bool("autoMigrate", dbCfg.AutoMigrate),
			)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolMonitor reports connection pool contention. Order intake and stock
// decrements hold row locks, so waits here show up as checkout latency.
type poolMonitor struct {
	logger    *slog.Logger
	warnAfter time.Duration
	prev      sql.DBStats
}

func (m *poolMonitor) run(ctx context.Context, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	m.prev = sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.observe(ctx, sqlDB.Stats())
		}
	}
}

// observe logs the waits accumulated since the previous sample.
func (m *poolMonitor) observe(ctx context.Context, cur sql.DBStats) {
	waits := cur.WaitCount - m.prev.WaitCount
	waited := cur.WaitDuration - m.prev.WaitDuration
	m.prev = cur

	if waits <= 0 {
		return
	}

	level := slog.LevelDebug
	if waited >= m.warnAfter {
		level = slog.LevelWarn
	}

	m.logger.LogAttrs(ctx, level, "Postgres pool contention",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avgWait", waited/time.Duration(waits)),
		slog.Int("inUse", cur.InUse),
		slog.Int("idle", cur.Idle),
		slog.Int("maxOpen", cur.MaxOpenConnections),
	)
}
