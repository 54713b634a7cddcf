// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	TaskHandler    *handler.TaskHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	taskHandler    *handler.TaskHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		taskHandler:    params.TaskHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
	}

	// Task routes require authentication
	taskGroup := e.Group("/tasks")
	taskGroup.Use(r.authMiddleware.Authenticate) // Apply JWT authentication middleware
	{
		taskGroup.GET("", r.taskHandler.List)
		taskGroup.POST("", r.taskHandler.Create)
		taskGroup.GET("/:id", r.taskHandler.Get)
		taskGroup.PUT("/:id", r.taskHandler.Update)
		taskGroup.DELETE("/:id", r.taskHandler.Delete)
	}
}
