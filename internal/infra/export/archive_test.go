package export

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"gocloud.dev/blob"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestArchivingExporter_WritesWorkbookToBucket(t *testing.T) {
	ctx := context.Background()
	bucket, err := blob.OpenBucket(ctx, "mem://")
	require.NoError(t, err)
	defer bucket.Close()

	farm := &entity.Farm{ID: uuid.New(), Name: "晨光農場"}
	exporter := newArchivingExporter(NewXLSXExporter(), bucket, discardLogger())
	exporter.now = func() time.Time { return time.Date(2026, 3, 2, 8, 30, 0, 0, time.UTC) }

	data, err := exporter.ExportFarmOrders(ctx, farm, nil)
	require.NoError(t, err)

	key := "farm-orders/" + farm.ID.String() + "/20260302T083000Z.xlsx"
	stored, err := bucket.ReadAll(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, data, stored)

	attrs, err := bucket.Attributes(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, xlsxContentType, attrs.ContentType)
}

func TestNewFarmOrderExporter(t *testing.T) {
	t.Run("no archive configured", func(t *testing.T) {
		exporter, err := NewFarmOrderExporter(ExporterParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{},
			Logger: discardLogger(),
		})
		require.NoError(t, err)
		assert.IsType(t, &xlsxExporter{}, exporter)
	})

	t.Run("archive bucket", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		exporter, err := NewFarmOrderExporter(ExporterParams{
			Lc:     lc,
			Ctx:    context.Background(),
			Config: &config.Config{Export: &config.ExportConfig{ArchiveBucketURL: "mem://"}},
			Logger: discardLogger(),
		})
		require.NoError(t, err)
		assert.IsType(t, &archivingExporter{}, exporter)

		lc.RequireStart()
		lc.RequireStop()
	})

	t.Run("unknown scheme", func(t *testing.T) {
		_, err := NewFarmOrderExporter(ExporterParams{
			Lc:     fxtest.NewLifecycle(t),
			Ctx:    context.Background(),
			Config: &config.Config{Export: &config.ExportConfig{ArchiveBucketURL: "nope://bucket"}},
			Logger: discardLogger(),
		})
		require.Error(t, err)
	})
}
