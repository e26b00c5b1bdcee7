package middleware

import (
	"log/slog"
	"strings"

	"coach/internal/delivery/api/response"
	deliverycontext "coach/internal/delivery/context"
	domainerrors "coach/internal/domain/errors"
	"coach/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const subjectKey = "subject"

// AuthMiddleware checks the bearer token on protected routes. With no
// signing secret configured every request passes.
type AuthMiddleware struct {
	tokens service.APITokenService
	logger *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokens service.APITokenService, logger *slog.Logger) *AuthMiddleware {
	if !tokens.Enabled() {
		logger.Warn("auth.jwtSecret is empty, /api/v1 is not protected")
	}

	return &AuthMiddleware{tokens: tokens, logger: logger}
}

// Authenticate validates the HS256 access token in the Authorization header.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.tokens.Enabled() {
			return next(c)
		}

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized.WithDetails("authorization header is missing"))
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized.WithDetails("token must use the Bearer scheme"))
		}

		subject, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected API token", slog.Any("error", err))

			return response.HandleAppError(c, domainerrors.ErrUnauthorized)
		}

		c.Set(subjectKey, subject)

		return next(c)
	}
}

// GetSubject returns the token subject set by Authenticate.
func GetSubject(c echo.Context) (string, bool) {
	subject, ok := c.Get(subjectKey).(string)

	return subject, ok && subject != ""
}
