package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"harvest/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSXExporter_ExportFarmOrders(t *testing.T) {
	farm := &entity.Farm{ID: uuid.New(), Name: "晨光農場"}
	delivery := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	fo := &entity.FarmOrder{
		ID:           uuid.New(),
		OrderID:      uuid.New(),
		FarmID:       farm.ID,
		Status:       entity.FarmOrderStatusReady,
		DeliveryTime: &delivery,
		CreatedAt:    time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		Items: []entity.OrderItem{
			{ID: uuid.New(), ProductID: uuid.New(), ProductName: "番茄", Quantity: 3, UnitPrice: decimal.RequireFromString("2.50")},
			{ID: uuid.New(), ProductID: uuid.New(), ProductName: "玉米", Quantity: 1, UnitPrice: decimal.RequireFromString("4")},
		},
	}

	data, err := NewXLSXExporter().ExportFarmOrders(context.Background(), farm, []*entity.FarmOrder{fo})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	orders, err := wb.GetRows(ordersSheet)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "農場訂單編號", orders[0][0])
	assert.Equal(t, fo.ID.String(), orders[1][0])
	assert.Equal(t, fo.OrderID.String(), orders[1][1])
	assert.Equal(t, "READY", orders[1][2])
	assert.Equal(t, "2026-03-02T08:00:00Z", orders[1][3])
	assert.Equal(t, "2", orders[1][4])
	assert.Equal(t, "11.5", orders[1][5])

	items, err := wb.GetRows(itemsSheet)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "番茄", items[1][2])
	assert.Equal(t, "3", items[1][3])
	assert.Equal(t, "7.5", items[1][5])
	assert.Equal(t, "玉米", items[2][2])
}

func TestXLSXExporter_EmptyOrders(t *testing.T) {
	data, err := NewXLSXExporter().ExportFarmOrders(context.Background(), &entity.Farm{ID: uuid.New(), Name: "空農場"}, nil)
	require.NoError(t, err)

	wb, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(ordersSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
