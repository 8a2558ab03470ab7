// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"dispatch/internal/delivery/http/middleware"
	"dispatch/internal/delivery/http/router/handler"
	"dispatch/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeliveryHandler *handler.DeliveryHandler
	RiderHandler    *handler.RiderHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deliveryHandler *handler.DeliveryHandler
	riderHandler    *handler.RiderHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deliveryHandler: params.DeliveryHandler,
		riderHandler:    params.RiderHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Delivery routes for the requesting user
	deliveryGroup := e.Group("/deliveries")
	deliveryGroup.Use(r.authMiddleware.Authenticate)
	{
		deliveryGroup.POST("", r.deliveryHandler.CreateDelivery)
		deliveryGroup.GET("", r.deliveryHandler.ListDeliveries)
		deliveryGroup.GET("/:id", r.deliveryHandler.GetDelivery)
		deliveryGroup.DELETE("/:id", r.deliveryHandler.DeleteDelivery)
		deliveryGroup.POST("/confirm", r.deliveryHandler.ConfirmDelivery)
		deliveryGroup.POST("/confirm/code", r.deliveryHandler.ConfirmDeliveryByCode)
		deliveryGroup.GET("/:id/qrcode", r.deliveryHandler.GetDeliveryCodeQR)
		deliveryGroup.POST("/images", r.deliveryHandler.UploadPackageImage)
	}

	// Rider routes that require authentication and "rider" role
	riderGroup := e.Group("/rider")
	riderGroup.Use(r.authMiddleware.Authenticate)
	riderGroup.Use(r.authMiddleware.RequireRole(entity.RoleRider.String()))
	{
		riderGroup.POST("/deliveries/:id/accept", r.deliveryHandler.AcceptDelivery)
		riderGroup.POST("/deliveries/:id/reject", r.deliveryHandler.RejectDelivery)
		riderGroup.POST("/deliveries/:id/pickup", r.deliveryHandler.MarkPickedUp)
		riderGroup.GET("/deliveries/open", r.riderHandler.ListOpenDeliveries)
		riderGroup.PUT("/location", r.riderHandler.UpdateLocation)
		riderGroup.PUT("/status", r.riderHandler.UpdateStatus)
		riderGroup.PUT("/operating-areas", r.riderHandler.SetOperatingAreas)
	}

	// Admin routes that require authentication and "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.POST("/riders/:id/verify", r.riderHandler.VerifyRider)
	}
}
