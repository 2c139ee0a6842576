package handler

import (
	"log/slog"

	"harvest/internal/delivery/api/response"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CropHandlerParams holds dependencies for CropHandler, injected by Fx.
type CropHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// CropHandler serves the read-only crop catalog
type CropHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewCropHandler is the constructor for CropHandler
func NewCropHandler(params CropHandlerParams) *CropHandler {
	return &CropHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

// ListCrops handles GET /crops?category=
func (h *CropHandler) ListCrops(c echo.Context) error {
	crops, err := h.catalogUC.ListCrops(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, crops)
}

// GetCrop handles GET /crops/:id
func (h *CropHandler) GetCrop(c echo.Context) error {
	cropID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	crop, err := h.catalogUC.GetCrop(c.Request().Context(), cropID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, crop)
}
