package handler

import (
	"fmt"
	"log/slog"
	"time"

	"harvest/internal/delivery/api/response"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	"harvest/internal/domain/service"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	QRCode  service.QRCodeService
	Logger  *slog.Logger
}

// OrderHandler exposes orders and farm order fulfilment
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	qrcode  service.QRCodeService
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		qrcode:  params.QRCode,
		logger:  params.Logger,
	}
}

// OrderResponse adds the derived aggregate status to an order
type OrderResponse struct {
	*entity.Order
	Status entity.FarmOrderStatus `json:"status"`
}

func newOrderResponse(order *entity.Order) *OrderResponse {
	return &OrderResponse{Order: order, Status: order.Status()}
}

// SetFarmOrderStatusRequest moves a farm order along its status graph
type SetFarmOrderStatusRequest struct {
	Status       entity.FarmOrderStatus `json:"status" validate:"required"`
	DeliveryTime *time.Time             `json:"delivery_time,omitempty"`
}

// SetDeliveryTimeRequest sets the delivery time of a farm order
type SetDeliveryTimeRequest struct {
	DeliveryTime time.Time `json:"delivery_time" validate:"required"`
}

// ConfirmDeliveryRequest carries either the typed pickup code or the scanned QR payload
type ConfirmDeliveryRequest struct {
	Code   string `json:"code" validate:"omitempty,numeric,max=12"`
	QRData string `json:"qr_data" validate:"required_without=Code"`
}

// Ingest handles POST /internal/orders, the HTTP twin of the checkout event consumer
func (h *OrderHandler) Ingest(c echo.Context) error {
	var placed entity.PlacedOrder
	if err := c.Bind(&placed); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order payload")
	}

	order, err := h.orderUC.IngestOrder(c.Request().Context(), &placed)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, newOrderResponse(order))
}

// ListMine handles GET /orders
func (h *OrderHandler) ListMine(c echo.Context) error {
	orders, err := h.orderUC.ListMyOrders(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result := make([]*OrderResponse, 0, len(orders))
	for _, order := range orders {
		result = append(result, newOrderResponse(order))
	}

	return response.OK(c, result)
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c echo.Context) error {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), deliverycontext.GetActor(c), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, newOrderResponse(order))
}

// GetStatus handles GET /orders/:id/status
func (h *OrderHandler) GetStatus(c echo.Context) error {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	status, err := h.orderUC.GetOrderAggregateStatus(c.Request().Context(), deliverycontext.GetActor(c), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]any{"order_id": orderID, "status": status})
}

// IssueDeliveryCode handles POST /orders/:id/delivery-code
func (h *OrderHandler) IssueDeliveryCode(c echo.Context) error {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	code, err := h.orderUC.IssueDeliveryCode(c.Request().Context(), deliverycontext.GetActor(c), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, code)
}

// ListFarmOrders handles GET /farms/:id/farm-orders
func (h *OrderHandler) ListFarmOrders(c echo.Context) error {
	farmID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	orders, err := h.orderUC.ListFarmOrders(c.Request().Context(), deliverycontext.GetActor(c), farmID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, orders)
}

// ExportFarmOrders handles GET /farms/:id/farm-orders/export
func (h *OrderHandler) ExportFarmOrders(c echo.Context) error {
	farmID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	data, err := h.orderUC.ExportFarmOrders(c.Request().Context(), deliverycontext.GetActor(c), farmID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Attachment(c, xlsxContentType, fmt.Sprintf("farm-orders-%s.xlsx", farmID), data)
}

// SetFarmOrderStatus handles PATCH /farm-orders/:id/status
func (h *OrderHandler) SetFarmOrderStatus(c echo.Context) error {
	farmOrderID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req SetFarmOrderStatusRequest
	if !bindAndValidate(c, &req) {
		return nil
	}

	fo, err := h.orderUC.SetFarmOrderStatus(c.Request().Context(), deliverycontext.GetActor(c), farmOrderID, req.Status, req.DeliveryTime)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, fo)
}

// SetDeliveryTime handles PUT /farm-orders/:id/delivery-time
func (h *OrderHandler) SetDeliveryTime(c echo.Context) error {
	farmOrderID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req SetDeliveryTimeRequest
	if !bindAndValidate(c, &req) {
		return nil
	}

	fo, err := h.orderUC.SetFarmOrderDeliveryTime(c.Request().Context(), deliverycontext.GetActor(c), farmOrderID, req.DeliveryTime)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, fo)
}

// ConfirmDelivery handles POST /farm-orders/:id/confirm-delivery
func (h *OrderHandler) ConfirmDelivery(c echo.Context) error {
	farmOrderID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req ConfirmDeliveryRequest
	if !bindAndValidate(c, &req) {
		return nil
	}

	code := req.Code
	if req.QRData != "" {
		_, scanned, err := h.qrcode.ParseDeliveryQR(req.QRData)
		if err != nil {
			return response.BadRequest(c, "INVALID_QR_CODE", "無法辨識的取貨 QR Code")
		}
		code = scanned
	}

	fo, err := h.orderUC.ConfirmDelivery(c.Request().Context(), deliverycontext.GetActor(c), farmOrderID, code)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, fo)
}
