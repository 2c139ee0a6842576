package handler

import (
	"log/slog"
	"strconv"

	"harvest/internal/delivery/api/response"
	deliverycontext "harvest/internal/delivery/context"
	"harvest/internal/domain/entity"
	"harvest/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FarmHandlerParams holds dependencies for FarmHandler, injected by Fx.
type FarmHandlerParams struct {
	fx.In

	FarmUC usecase.FarmUsecase
	Logger *slog.Logger
}

// FarmHandler holds dependencies for farm registry handlers
type FarmHandler struct {
	farmUC usecase.FarmUsecase
	logger *slog.Logger
}

// NewFarmHandler is the constructor for FarmHandler
func NewFarmHandler(params FarmHandlerParams) *FarmHandler {
	return &FarmHandler{
		farmUC: params.FarmUC,
		logger: params.Logger,
	}
}

// RejectFarmRequest represents the request body for rejecting a farm
type RejectFarmRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// RateFarmRequest represents the request body for rating a farm
type RateFarmRequest struct {
	Score int `json:"score" validate:"required"`
}

// Register handles POST /farms
func (h *FarmHandler) Register(c echo.Context) error {
	var req usecase.RegisterFarmInput
	if !bindAndValidate(c, &req) {
		return nil
	}

	farm, err := h.farmUC.Register(c.Request().Context(), deliverycontext.GetActor(c), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, farm)
}

// Get handles GET /farms/:id
func (h *FarmHandler) Get(c echo.Context) error {
	farmID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	farm, err := h.farmUC.Get(c.Request().Context(), farmID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, farm)
}

// ListByStatus handles GET /farms?status= for admins
func (h *FarmHandler) ListByStatus(c echo.Context) error {
	status := entity.FarmStatus(c.QueryParam("status"))

	farms, err := h.farmUC.ListByStatus(c.Request().Context(), deliverycontext.GetActor(c), status)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, farms)
}

// ListMine handles GET /farms/mine
func (h *FarmHandler) ListMine(c echo.Context) error {
	farms, err := h.farmUC.ListMine(c.Request().Context(), deliverycontext.GetActor(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, farms)
}

// Approve handles POST /farms/:id/approve
func (h *FarmHandler) Approve(c echo.Context) error {
	farmID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	farm, err := h.farmUC.Approve(c.Request().Context(), deliverycontext.GetActor(c), farmID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, farm)
}

// Reject handles POST /farms/:id/reject
func (h *FarmHandler) Reject(c echo.Context) error {
	farmID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req RejectFarmRequest
	if !bindAndValidate(c, &req) {
		return nil
	}

	farm, err := h.farmUC.Reject(c.Request().Context(), deliverycontext.GetActor(c), farmID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, farm)
}

// Delete handles DELETE /farms/:id
func (h *FarmHandler) Delete(c echo.Context) error {
	farmID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	if err := h.farmUC.Delete(c.Request().Context(), deliverycontext.GetActor(c), farmID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, map[string]string{"message": "農場已刪除"})
}

// Rate handles POST /farms/:id/ratings
func (h *FarmHandler) Rate(c echo.Context) error {
	farmID, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req RateFarmRequest
	if !bindAndValidate(c, &req) {
		return nil
	}

	farm, err := h.farmUC.Rate(c.Request().Context(), deliverycontext.GetActor(c), farmID, req.Score)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, farm)
}

// FindNearby handles GET /farms/nearby?lat=&lng=&radius_km=
func (h *FarmHandler) FindNearby(c echo.Context) error {
	lat, errLat := strconv.ParseFloat(c.QueryParam("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if errLat != nil || errLng != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return response.BadRequest(c, "INVALID_COORDINATES", "lat and lng must be valid coordinates")
	}

	var radius float64
	if raw := c.QueryParam("radius_km"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return response.BadRequest(c, "INVALID_RADIUS", "radius_km must be a number")
		}
		radius = parsed
	}

	farms, err := h.farmUC.FindNearby(c.Request().Context(), entity.GeoPoint{Latitude: lat, Longitude: lng}, radius)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.OK(c, farms)
}
