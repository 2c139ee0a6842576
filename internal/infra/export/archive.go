package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"harvest/config"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExporterParams holds dependencies for the farm order exporter, injected by Fx
type ExporterParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewFarmOrderExporter returns the xlsx exporter. When an archive bucket is configured
// every generated workbook is also written there.
func NewFarmOrderExporter(params ExporterParams) (service.FarmOrderExporter, error) {
	exporter := NewXLSXExporter()

	cfg := params.Config.Export
	if cfg == nil || cfg.ArchiveBucketURL == "" {
		return exporter, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.ArchiveBucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open export archive bucket")
	}
	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return errors.WithStack(bucket.Close())
		},
	})
	params.Logger.Info("Archiving farm order exports", slog.String("bucket", cfg.ArchiveBucketURL))

	return newArchivingExporter(exporter, bucket, params.Logger), nil
}

type archivingExporter struct {
	next   service.FarmOrderExporter
	bucket *blob.Bucket
	logger *slog.Logger
	now    func() time.Time
}

func newArchivingExporter(next service.FarmOrderExporter, bucket *blob.Bucket, logger *slog.Logger) *archivingExporter {
	return &archivingExporter{
		next:   next,
		bucket: bucket,
		logger: logger,
		now:    time.Now,
	}
}

// ExportFarmOrders renders the workbook and keeps a copy in the bucket.
// A failed upload is logged; the caller still gets the workbook.
func (e *archivingExporter) ExportFarmOrders(ctx context.Context, farm *entity.Farm, orders []*entity.FarmOrder) ([]byte, error) {
	data, err := e.next.ExportFarmOrders(ctx, farm, orders)
	if err != nil {
		return nil, err
	}

	key := archiveKey(farm.ID, e.now())
	if err := e.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: xlsxContentType}); err != nil {
		e.logger.Warn("Failed to archive farm order export",
			slog.String("farm_id", farm.ID.String()),
			slog.String("key", key),
			slog.Any("error", err),
		)
	}

	return data, nil
}

func archiveKey(farmID uuid.UUID, at time.Time) string {
	return fmt.Sprintf("farm-orders/%s/%s.xlsx", farmID, at.UTC().Format("20060102T150405Z"))
}
