package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"mutuals/config"
	"mutuals/internal/domain/lifecycle"
	"mutuals/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL pool, pings it on start and closes it on stop.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres configuration is required for the postgres store")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, storeError(err, "open postgres")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement atomicity goes through TransactionManager.Execute only.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitor := &poolMonitor{logger: params.Logger, threshold: dbPoolWarnDurationThreshold}
	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return storeError(err, "ping postgres")
			}

			params.Logger.Info("Connected to PostgreSQL")

			go monitor.run(monitorCtx, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return errors.WithStack(sqlDB.Close())
		},
	})

	return db, nil
}

// poolMonitor reports connection pool waits. Contention shows up as slow likes
// and searches long before queries fail.
type poolMonitor struct {
	logger    *slog.Logger
	threshold time.Duration
}

func (m *poolMonitor) run(ctx context.Context, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			m.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

// observe logs the waits between two samples. It reports whether anything was logged.
func (m *poolMonitor) observe(ctx context.Context, prev, cur sql.DBStats) bool {
	waitDelta := cur.WaitCount - prev.WaitCount
	if waitDelta <= 0 {
		return false
	}

	waitDurationDelta := cur.WaitDuration - prev.WaitDuration
	attrs := []slog.Attr{
		slog.Int64("wait_count_delta", waitDelta),
		slog.Duration("wait_duration_delta", waitDurationDelta),
		slog.Duration("avg_wait", waitDurationDelta/time.Duration(waitDelta)),
		slog.Int("max_open_conns", cur.MaxOpenConnections),
		slog.Int("open_conns", cur.OpenConnections),
		slog.Int("in_use_conns", cur.InUse),
		slog.Int("idle_conns", cur.Idle),
	}

	level, msg := slog.LevelDebug, "Postgres pool wait observed"
	if waitDurationDelta >= m.threshold {
		level, msg = slog.LevelWarn, "Postgres pool wait detected"
	}
	m.logger.LogAttrs(ctx, level, msg, attrs...)

	return true
}
