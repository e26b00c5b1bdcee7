// Package handler contains the echo handlers of the API server.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Root reports that the service is up.
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"message": "AI Coach is running"})
}

// HealthCheck is the liveness probe.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}
