// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"roster/internal/delivery/http/middleware"
	"roster/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler      *handler.AccountHandler
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler      *handler.AccountHandler
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:      params.AccountHandler,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	accountGroup := e.Group("/accounts")
	{
		accountGroup.POST("", r.accountHandler.Create)
		accountGroup.GET("", r.accountHandler.List)
		accountGroup.GET("/:email", r.accountHandler.Get)
		accountGroup.PUT("/:email", r.accountHandler.Update)
		accountGroup.DELETE("/:email", r.accountHandler.Delete)
	}
}
