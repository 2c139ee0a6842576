package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFarmOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from FarmOrderStatus
		to   FarmOrderStatus
		want bool
	}{
		{FarmOrderStatusPending, FarmOrderStatusReady, true},
		{FarmOrderStatusPending, FarmOrderStatusCanceled, true},
		{FarmOrderStatusReady, FarmOrderStatusDelivered, true},
		{FarmOrderStatusPending, FarmOrderStatusDelivered, false},
		{FarmOrderStatusPending, FarmOrderStatusPending, false},
		{FarmOrderStatusReady, FarmOrderStatusPending, false},
		{FarmOrderStatusReady, FarmOrderStatusCanceled, false},
		{FarmOrderStatusDelivered, FarmOrderStatusReady, false},
		{FarmOrderStatusCanceled, FarmOrderStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestFarmOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, FarmOrderStatusDelivered.IsTerminal())
	assert.True(t, FarmOrderStatusCanceled.IsTerminal())
	assert.False(t, FarmOrderStatusPending.IsTerminal())
	assert.False(t, FarmOrderStatusReady.IsTerminal())
	assert.False(t, FarmOrderStatus("SHIPPED").IsValid())
}

func TestAggregateOrderStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []FarmOrderStatus
		want     FarmOrderStatus
	}{
		{"empty", nil, FarmOrderStatusPending},
		{"all pending", []FarmOrderStatus{FarmOrderStatusPending, FarmOrderStatusPending}, FarmOrderStatusPending},
		{"ready and pending", []FarmOrderStatus{FarmOrderStatusReady, FarmOrderStatusPending}, FarmOrderStatusPending},
		{"all ready", []FarmOrderStatus{FarmOrderStatusReady, FarmOrderStatusReady}, FarmOrderStatusReady},
		{"ready and delivered", []FarmOrderStatus{FarmOrderStatusReady, FarmOrderStatusDelivered}, FarmOrderStatusReady},
		{"ready and canceled", []FarmOrderStatus{FarmOrderStatusReady, FarmOrderStatusCanceled}, FarmOrderStatusReady},
		{"all delivered", []FarmOrderStatus{FarmOrderStatusDelivered, FarmOrderStatusDelivered}, FarmOrderStatusDelivered},
		{"delivered and canceled", []FarmOrderStatus{FarmOrderStatusDelivered, FarmOrderStatusCanceled}, FarmOrderStatusDelivered},
		{"all canceled", []FarmOrderStatus{FarmOrderStatusCanceled, FarmOrderStatusCanceled}, FarmOrderStatusPending},
		{"pending and delivered", []FarmOrderStatus{FarmOrderStatusPending, FarmOrderStatusDelivered}, FarmOrderStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AggregateOrderStatus(tt.statuses))
		})
	}
}

func TestOrder_ComputeTotal(t *testing.T) {
	order := &Order{
		FarmOrders: []*FarmOrder{
			{Items: []OrderItem{
				{Quantity: 3, UnitPrice: decimal.RequireFromString("2.50")},
				{Quantity: 1, UnitPrice: decimal.RequireFromString("4")},
			}},
			{Items: []OrderItem{
				{Quantity: 2, UnitPrice: decimal.RequireFromString("0.10")},
			}},
		},
	}

	assert.True(t, order.ComputeTotal().Equal(decimal.RequireFromString("11.70")))
	assert.True(t, order.FarmOrders[0].Total().Equal(decimal.RequireFromString("11.5")))
}

func TestOrder_FarmOrder(t *testing.T) {
	id := uuid.New()
	order := &Order{FarmOrders: []*FarmOrder{{ID: uuid.New()}, {ID: id}}}

	assert.Equal(t, id, order.FarmOrder(id).ID)
	assert.Nil(t, order.FarmOrder(uuid.New()))
}
