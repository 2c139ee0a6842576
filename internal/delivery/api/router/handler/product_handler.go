package handler

import (
	"log/slog"
	"strconv"

	"harvest/internal/delivery/api/response"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/repository"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ProductHandlerParams holds dependencies for ProductHandler, injected by Fx.
type ProductHandlerParams struct {
	fx.In

	ProductUC usecase.ProductUsecase
	Logger    *slog.Logger
}

// ProductHandler serves the store catalog
type ProductHandler struct {
	productUC usecase.ProductUsecase
	logger    *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler
func NewProductHandler(params ProductHandlerParams) *ProductHandler {
	return &ProductHandler{
		productUC: params.ProductUC,
		logger:    params.Logger,
	}
}

// List handles GET /products?farm_id=&category=&available=
func (h *ProductHandler) List(c echo.Context) error {
	filter := repository.ProductFilter{Category: c.QueryParam("category")}

	if raw := c.QueryParam("farm_id"); raw != "" {
		farmID, err := uuid.Parse(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid farm_id")
		}
		filter.FarmID = &farmID
	}
	if raw := c.QueryParam("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			return response.BadRequest(c, "INVALID_INPUT", "available must be a boolean")
		}
		filter.AvailableOnly = available
	}

	products, err := h.productUC.List(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, products)
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	product, err := h.productUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// Create handles POST /products
func (h *ProductHandler) Create(c echo.Context) error {
	var req usecase.CreateProductInput
	if !bindAndValidate(c, &req) {
		return nil
	}

	product, err := h.productUC.Create(c.Request().Context(), deliverycontext.GetActor(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, product)
}

// Update handles PATCH /products/:id
func (h *ProductHandler) Update(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req usecase.UpdateProductInput
	if !bindAndValidate(c, &req) {
		return nil
	}

	product, err := h.productUC.Update(c.Request().Context(), deliverycontext.GetActor(c), id, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c echo.Context) error {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	if err := h.productUC.Delete(c.Request().Context(), deliverycontext.GetActor(c), id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "商品已刪除"})
}
