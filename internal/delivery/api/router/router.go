// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"harvest/internal/delivery/api/middleware"
	"harvest/internal/delivery/api/router/handler"
	"harvest/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CropHandler           *handler.CropHandler
	FarmHandler           *handler.FarmHandler
	PlantedCropHandler    *handler.PlantedCropHandler
	ProductHandler        *handler.ProductHandler
	OrderHandler          *handler.OrderHandler
	AuthMiddleware        *middleware.AuthMiddleware
	IdempotencyMiddleware *middleware.IdempotencyMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	crop        *handler.CropHandler
	farm        *handler.FarmHandler
	plantedCrop *handler.PlantedCropHandler
	product     *handler.ProductHandler
	order       *handler.OrderHandler
	auth        *middleware.AuthMiddleware
	idempotency *middleware.IdempotencyMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		crop:        params.CropHandler,
		farm:        params.FarmHandler,
		plantedCrop: params.PlantedCropHandler,
		product:     params.ProductHandler,
		order:       params.OrderHandler,
		auth:        params.AuthMiddleware,
		idempotency: params.IdempotencyMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authn := r.auth.Authenticate
	admin := r.auth.RequireRole(entity.RoleAdmin)
	farmer := r.auth.RequireRole(entity.RoleFarmer, entity.RoleAdmin)
	consumer := r.auth.RequireRole(entity.RoleConsumer)

	// Public reads attach the caller when a token is sent; the idempotency middleware
	// runs after authentication so keys are scoped per caller.
	apiV1 := e.Group("/api/v1", r.auth.OptionalAuthenticate, r.idempotency.Handle)

	crops := apiV1.Group("/crops")
	{
		crops.GET("", r.crop.ListCrops)
		crops.GET("/:id", r.crop.GetCrop)
	}

	farms := apiV1.Group("/farms")
	{
		farms.GET("/nearby", r.farm.FindNearby)
		farms.GET("/mine", r.farm.ListMine, authn, farmer)
		farms.GET("", r.farm.ListByStatus, authn, admin)
		farms.POST("", r.farm.Register, authn, farmer)
		farms.GET("/:id", r.farm.Get)
		farms.DELETE("/:id", r.farm.Delete, authn, admin)
		farms.POST("/:id/approve", r.farm.Approve, authn, admin)
		farms.POST("/:id/reject", r.farm.Reject, authn, admin)
		farms.POST("/:id/ratings", r.farm.Rate, authn, consumer)
		farms.GET("/:id/planted-crops", r.plantedCrop.ListByFarm)
		farms.GET("/:id/farm-orders", r.order.ListFarmOrders, authn, farmer)
		farms.GET("/:id/farm-orders/export", r.order.ExportFarmOrders, authn, farmer)
	}

	plantedCrops := apiV1.Group("/planted-crops")
	{
		plantedCrops.POST("", r.plantedCrop.Plant, authn, farmer)
		plantedCrops.GET("/:id", r.plantedCrop.Get)
		plantedCrops.DELETE("/:id", r.plantedCrop.Remove, authn, farmer)
		plantedCrops.POST("/:id/adjust", r.plantedCrop.AdjustQuantity, authn, farmer)
		plantedCrops.POST("/:id/harvest", r.plantedCrop.RecordHarvest, authn, farmer)
		plantedCrops.POST("/:id/send-to-store", r.plantedCrop.SendToStore, authn, farmer)
	}

	products := apiV1.Group("/products")
	{
		products.GET("", r.product.List)
		products.GET("/:id", r.product.Get)
		products.POST("", r.product.Create, authn, admin)
		products.PATCH("/:id", r.product.Update, authn, farmer)
		products.DELETE("/:id", r.product.Delete, authn, farmer)
	}

	orders := apiV1.Group("/orders", authn)
	{
		orders.GET("", r.order.ListMine, consumer)
		orders.GET("/:id", r.order.Get)
		orders.GET("/:id/status", r.order.GetStatus)
		orders.POST("/:id/delivery-code", r.order.IssueDeliveryCode, consumer)
	}

	farmOrders := apiV1.Group("/farm-orders", authn, farmer)
	{
		farmOrders.PATCH("/:id/status", r.order.SetFarmOrderStatus)
		farmOrders.PUT("/:id/delivery-time", r.order.SetDeliveryTime)
		farmOrders.POST("/:id/confirm-delivery", r.order.ConfirmDelivery)
	}

	// Checkout system entry point; normally fed by the orders.placed consumer
	internal := e.Group("/internal", authn, admin, r.idempotency.Handle)
	{
		internal.POST("/orders", r.order.Ingest)
	}
}
