// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"empreende/internal/delivery/http/middleware"
	"empreende/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RegistrationHandler *handler.RegistrationHandler
	SelectionHandler    *handler.SelectionHandler
	SubscriptionHandler *handler.SubscriptionHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	registrationHandler *handler.RegistrationHandler
	selectionHandler    *handler.SelectionHandler
	subscriptionHandler *handler.SubscriptionHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		registrationHandler: params.RegistrationHandler,
		selectionHandler:    params.SelectionHandler,
		subscriptionHandler: params.SubscriptionHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public exhibitor routes
	registrationGroup := e.Group("/registrations")
	{
		registrationGroup.POST("", r.registrationHandler.Register)
		registrationGroup.GET("/lookup", r.registrationHandler.Lookup)
		registrationGroup.GET("/:id/qr", r.registrationHandler.StatusQR)
		registrationGroup.POST("/:id/choices", r.selectionHandler.SubmitChoices)
	}

	// Public push-subscription registry
	subscriptionGroup := e.Group("/subscriptions")
	{
		subscriptionGroup.POST("", r.subscriptionHandler.Subscribe)
		subscriptionGroup.DELETE("", r.subscriptionHandler.Unsubscribe)
		subscriptionGroup.GET("/active", r.subscriptionHandler.Active)
	}

	// Admin dashboard routes
	adminGroup := e.Group("/admin")
	adminGroup.POST("/login", r.adminHandler.Login)

	protected := adminGroup.Group("/registrations")
	protected.Use(r.authMiddleware.Authenticate)
	{
		protected.GET("", r.registrationHandler.List)
		protected.PATCH("/:id/status", r.registrationHandler.UpdateStatus)
		protected.POST("/:id/window", r.selectionHandler.OpenWindow)
	}
}
