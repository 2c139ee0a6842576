package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormLogger sends GORM output to slog. Lookups that find nothing are not
// errors here; repositories turn them into domain not-found errors.
type gormLogger struct {
	logger *slog.Logger
	level  logger.LogLevel
	slow   time.Duration
}

func newGormLogger(base *slog.Logger, debug bool, slow time.Duration) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	return &gormLogger{logger: base, level: level, slow: slow}
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *gormLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *gormLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *gormLogger) printf(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < min {
		return
	}
	l.logger.LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		l.logStatement(ctx, slog.LevelError, "Statement failed", fc, elapsed, slog.String("error", err.Error()))
	case l.slow > 0 && elapsed > l.slow && l.level >= logger.Warn:
		l.logStatement(ctx, slog.LevelWarn, "Slow statement", fc, elapsed, slog.Duration("threshold", l.slow))
	case l.level >= logger.Info:
		l.logStatement(ctx, slog.LevelInfo, "Statement", fc, elapsed)
	}
}

func (l *gormLogger) logStatement(ctx context.Context, level slog.Level, msg string, fc func() (string, int64), elapsed time.Duration, extra ...slog.Attr) {
	sql, rows := fc()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)

	l.logger.LogAttrs(ctx, level, msg, attrs...)
}
