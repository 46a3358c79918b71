package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mutuals/config"
	deliverycontext "mutuals/internal/delivery/context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output to the request logger. Outside debug mode
// bound values are dropped from logged SQL, since they carry phone numbers and
// search terms.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
	showValues    bool
}

var (
	_ gormlogger.Interface = (*gormSlogLogger)(nil)
	_ gorm.ParamsFilter    = (*gormSlogLogger)(nil)
)

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) *gormSlogLogger {
	debug := cfg != nil && cfg.Env.Debug

	level := gormlogger.Warn
	if debug {
		level = gormlogger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
		showValues:    debug,
	}
}

func (l *gormSlogLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Info, slog.LevelInfo, msg, args)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, gormlogger.Error, slog.LevelError, msg, args)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold gormlogger.LogLevel, level slog.Level, msg string, args []any) {
	if l.logger == nil || l.level < threshold {
		return
	}

	deliverycontext.GetLoggerOrDefault(ctx, l.logger).LogAttrs(ctx, level, "GORM message",
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

// ParamsFilter strips bound values before GORM renders the statement for Trace.
func (l *gormSlogLogger) ParamsFilter(_ context.Context, sql string, params ...any) (string, []any) {
	if l.showValues {
		return sql, params
	}

	return sql, nil
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, extra, ok := l.classify(err, elapsed)
	if !ok {
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	deliverycontext.GetLoggerOrDefault(ctx, l.logger).LogAttrs(ctx, level, msg, attrs...)
}

// classify decides whether a traced statement is logged, and how.
func (l *gormSlogLogger) classify(err error, elapsed time.Duration) (slog.Level, string, []slog.Attr, bool) {
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return 0, "", nil, false
	case err != nil && l.level >= gormlogger.Error:
		// Duplicates are expected under concurrent toggles; callers re-read.
		level := slog.LevelError
		if isUniqueConstraintViolation(err) {
			level = slog.LevelDebug
		}

		return level, "GORM query failed", []slog.Attr{slog.String("error", err.Error())}, true
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		return slog.LevelWarn, "GORM slow query", []slog.Attr{slog.Duration("slow_threshold", l.slowThreshold)}, true
	case err == nil && l.level >= gormlogger.Info:
		return slog.LevelDebug, "GORM query", nil, true
	default:
		return 0, "", nil, false
	}
}
