package rest

import (
	"toolbox/config"
	"toolbox/di"
	"toolbox/utils/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
)

func RegisterRoutes(e *echo.Echo, container *di.ApplicationComponents, telemetry config.TelemetryConfig) {
	if telemetry.Enabled {
		e.Use(otelecho.Middleware(telemetry.ServiceName))
	}
	e.Use(middleware.RequestID())
	e.Use(middleware.Recover())
	e.Use(LoggingMiddleware(logger.Logger))

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	v1 := e.Group("/v1")
	v1.GET("/health", healthHandler(container.ReadinessCheckers))
	v1.GET("/trends/:date", fetchTrendsHandler(container))
}
