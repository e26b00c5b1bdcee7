// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"coach/internal/delivery/api/middleware"
	"coach/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	MetricsHandler *handler.MetricsHandler
	BriefHandler   *handler.BriefHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	metricsHandler *handler.MetricsHandler
	briefHandler   *handler.BriefHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		metricsHandler: params.MetricsHandler,
		briefHandler:   params.BriefHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Root)
	e.GET("/health", handler.HealthCheck)

	debugGroup := e.Group("/debug")
	{
		debugGroup.GET("/garmin-login", r.sessionHandler.DebugLogin)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	{
		apiV1.POST("/session/login", r.sessionHandler.Login)
		apiV1.GET("/stats/today", r.metricsHandler.TodayStats)
		apiV1.GET("/activities", r.metricsHandler.RecentActivities)
	}

	briefGroup := apiV1.Group("/brief")
	{
		briefGroup.GET("", r.briefHandler.GetBrief)
		briefGroup.POST("/publish", r.briefHandler.PublishBrief)
	}
}
