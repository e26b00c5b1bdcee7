package handler

import (
	"log/slog"

	"coach/internal/delivery/api/middleware"
	deliverycontext "coach/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// requestLogger returns the request-scoped logger, tagged with the token
// subject on authenticated requests.
func requestLogger(c echo.Context, fallback *slog.Logger) *slog.Logger {
	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), fallback)
	if subject, ok := middleware.GetSubject(c); ok {
		logger = logger.With(slog.String("subject", subject))
	}

	return logger
}
