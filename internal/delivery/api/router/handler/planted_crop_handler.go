package handler

import (
	"log/slog"
	"time"

	"harvest/internal/delivery/api/response"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PlantedCropHandlerParams holds dependencies for PlantedCropHandler, injected by Fx.
type PlantedCropHandlerParams struct {
	fx.In

	PlantedCropUC usecase.PlantedCropUsecase
	ProductUC     usecase.ProductUsecase
	Logger        *slog.Logger
}

// PlantedCropHandler exposes the planted crop ledger
type PlantedCropHandler struct {
	plantedCropUC usecase.PlantedCropUsecase
	productUC     usecase.ProductUsecase
	logger        *slog.Logger
}

// NewPlantedCropHandler is the constructor for PlantedCropHandler
func NewPlantedCropHandler(params PlantedCropHandlerParams) *PlantedCropHandler {
	return &PlantedCropHandler{
		plantedCropUC: params.PlantedCropUC,
		productUC:     params.ProductUC,
		logger:        params.Logger,
	}
}

// AdjustQuantityRequest is a signed change to the balance
type AdjustQuantityRequest struct {
	Delta int `json:"delta"`
}

// RecordHarvestRequest carries the actual harvest date
type RecordHarvestRequest struct {
	HarvestedAt time.Time `json:"harvested_at" validate:"required"`
}

// Plant handles POST /planted-crops
func (h *PlantedCropHandler) Plant(c echo.Context) error {
	var req usecase.PlantInput
	if !bindAndValidate(c, &req) {
		return nil
	}

	crop, err := h.plantedCropUC.Plant(c.Request().Context(), deliverycontext.GetActor(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, crop)
}

// Get handles GET /planted-crops/:id
func (h *PlantedCropHandler) Get(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	crop, err := h.plantedCropUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, crop)
}

// ListByFarm handles GET /farms/:id/planted-crops
func (h *PlantedCropHandler) ListByFarm(c echo.Context) error {
	farmID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	crops, err := h.plantedCropUC.ListByFarm(c.Request().Context(), deliverycontext.GetActor(c), farmID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, crops)
}

// AdjustQuantity handles POST /planted-crops/:id/adjust
func (h *PlantedCropHandler) AdjustQuantity(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req AdjustQuantityRequest
	if !bindAndValidate(c, &req) {
		return nil
	}

	crop, err := h.plantedCropUC.AdjustQuantity(c.Request().Context(), deliverycontext.GetActor(c), id, req.Delta)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, crop)
}

// RecordHarvest handles POST /planted-crops/:id/harvest
func (h *PlantedCropHandler) RecordHarvest(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req RecordHarvestRequest
	if !bindAndValidate(c, &req) {
		return nil
	}

	crop, err := h.plantedCropUC.RecordHarvest(c.Request().Context(), deliverycontext.GetActor(c), id, req.HarvestedAt)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, crop)
}

// Remove handles DELETE /planted-crops/:id
func (h *PlantedCropHandler) Remove(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	if err := h.plantedCropUC.Remove(c.Request().Context(), deliverycontext.GetActor(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "種植紀錄已刪除"})
}

// SendToStore handles POST /planted-crops/:id/send-to-store
func (h *PlantedCropHandler) SendToStore(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req usecase.SendToStoreInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid request body")
	}
	req.PlantedCropID = id
	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	product, err := h.productUC.CreateFromCrop(c.Request().Context(), deliverycontext.GetActor(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}
