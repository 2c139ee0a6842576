// Package export renders farm orders as xlsx workbooks.
package export

import (
	"context"
	"fmt"
	"time"

	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const (
	ordersSheet = "訂單"
	itemsSheet  = "品項"
)

var (
	orderHeader = []any{"農場訂單編號", "訂單編號", "狀態", "配送時間", "品項數", "小計", "建立時間"}
	itemHeader  = []any{"農場訂單編號", "商品編號", "商品名稱", "數量", "單價", "小計"}
)

type xlsxExporter struct{}

// NewXLSXExporter creates a FarmOrderExporter producing Excel workbooks.
func NewXLSXExporter() service.FarmOrderExporter {
	return &xlsxExporter{}
}

// ExportFarmOrders writes one row per farm order on the first sheet and one row per item on the second.
func (e *xlsxExporter) ExportFarmOrders(_ context.Context, farm *entity.Farm, orders []*entity.FarmOrder) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", ordersSheet); err != nil {
		return nil, errors.WithStack(err)
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, errors.WithStack(err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err := writeRow(f, ordersSheet, 1, orderHeader); err != nil {
		return nil, err
	}
	if err := writeRow(f, itemsSheet, 1, itemHeader); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(ordersSheet, "A1", "G1", headerStyle); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := f.SetCellStyle(itemsSheet, "A1", "F1", headerStyle); err != nil {
		return nil, errors.WithStack(err)
	}

	itemRow := 2
	for i, fo := range orders {
		deliveryTime := ""
		if fo.DeliveryTime != nil {
			deliveryTime = fo.DeliveryTime.UTC().Format(time.RFC3339)
		}

		row := []any{
			fo.ID.String(),
			fo.OrderID.String(),
			string(fo.Status),
			deliveryTime,
			len(fo.Items),
			fo.Total().InexactFloat64(),
			fo.CreatedAt.UTC().Format(time.RFC3339),
		}
		if err := writeRow(f, ordersSheet, i+2, row); err != nil {
			return nil, err
		}

		for _, item := range fo.Items {
			row := []any{
				fo.ID.String(),
				item.ProductID.String(),
				item.ProductName,
				item.Quantity,
				item.UnitPrice.InexactFloat64(),
				item.Subtotal().InexactFloat64(),
			}
			if err := writeRow(f, itemsSheet, itemRow, row); err != nil {
				return nil, err
			}
			itemRow++
		}
	}

	if farm != nil {
		if err := f.SetDocProps(&excelize.DocProperties{
			Title:   fmt.Sprintf("%s 訂單", farm.Name),
			Subject: farm.ID.String(),
		}); err != nil {
			return nil, errors.WithStack(err)
		}
	}

	if err := f.SetColWidth(ordersSheet, "A", "B", 38); err != nil {
		return nil, errors.WithStack(err)
	}
	if err := f.SetColWidth(itemsSheet, "A", "B", 38); err != nil {
		return nil, errors.WithStack(err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode workbook")
	}

	return buf.Bytes(), nil
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return errors.WithStack(err)
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return errors.Wrapf(err, "failed to write row %d of %s", row, sheet)
	}

	return nil
}
