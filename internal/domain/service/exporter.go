package service

import (
	"context"

	"harvest/internal/domain/entity"
)

// FarmOrderExporter renders a farm's orders into a downloadable spreadsheet.
type FarmOrderExporter interface {
	// ExportFarmOrders returns the encoded workbook.
	ExportFarmOrders(ctx context.Context, farm *entity.Farm, orders []*entity.FarmOrder) ([]byte, error)
}
