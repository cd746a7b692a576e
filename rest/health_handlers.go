package rest

import (
	"context"
	"net/http"
	"time"

	"toolbox/di"

	"github.com/labstack/echo/v4"
)

const readinessTimeout = 2 * time.Second

func healthHandler(checkers []di.ReadinessChecker) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), readinessTimeout)
		defer cancel()

		checks := make(map[string]string, len(checkers))
		status := http.StatusOK
		for _, checker := range checkers {
			if err := checker.Check(ctx); err != nil {
				checks[checker.Name] = err.Error()
				status = http.StatusServiceUnavailable
				continue
			}
			checks[checker.Name] = "ok"
		}

		overall := "healthy"
		if status != http.StatusOK {
			overall = "unhealthy"
		}
		return c.JSON(status, map[string]interface{}{
			"status": overall,
			"checks": checks,
		})
	}
}
