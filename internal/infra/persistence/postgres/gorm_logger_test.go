package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func bufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer

	return slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func stmt() (string, int64) {
	return "UPDATE planted_crops SET quantity = quantity + -2", 1
}

func TestGormLogger_Trace(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		elapsed time.Duration
		err     error
		want    string
	}{
		{name: "failure", err: errors.New("deadlock"), want: "Statement failed"},
		{name: "record not found is quiet", err: gorm.ErrRecordNotFound},
		{name: "slow statement", elapsed: time.Second, want: "Slow statement"},
		{name: "fast statement is quiet outside debug"},
		{name: "debug logs every statement", debug: true, want: "msg=Statement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base, buf := bufferLogger()
			l := newGormLogger(base, tt.debug, 100*time.Millisecond)

			l.Trace(context.Background(), time.Now().Add(-tt.elapsed), stmt, tt.err)

			if tt.want == "" {
				assert.Zero(t, buf.Len())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "planted_crops")
		})
	}
}

func TestGormLogger_Silent(t *testing.T) {
	base, buf := bufferLogger()
	l := newGormLogger(base, true, time.Millisecond).LogMode(logger.Silent)

	l.Trace(context.Background(), time.Now().Add(-time.Second), stmt, errors.New("boom"))
	l.Error(context.Background(), "boom %d", 1)

	assert.Zero(t, buf.Len())
}

func TestGormLogger_Printf(t *testing.T) {
	base, buf := bufferLogger()
	l := newGormLogger(base, false, 0)

	l.Info(context.Background(), "dropped")
	assert.Zero(t, buf.Len())

	l.Warn(context.Background(), "replica %s lagging", "r1")
	assert.Contains(t, buf.String(), "replica r1 lagging")
}

func TestPoolMonitor_Observe(t *testing.T) {
	base, buf := bufferLogger()
	m := &poolMonitor{logger: base, warnAfter: 50 * time.Millisecond}
	ctx := context.Background()

	m.observe(ctx, sql.DBStats{WaitCount: 0})
	assert.Zero(t, buf.Len())

	m.observe(ctx, sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")

	buf.Reset()
	m.observe(ctx, sql.DBStats{WaitCount: 3, WaitDuration: 110 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=1")
}
