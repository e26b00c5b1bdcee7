package handler

import (
	"log/slog"
	"net/http"

	"coach/internal/delivery/api/response"
	domainerrors "coach/internal/domain/errors"
	"coach/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionHandlerParams holds dependencies for SessionHandler, injected by Fx.
type SessionHandlerParams struct {
	fx.In

	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// SessionHandler exposes the Garmin session login.
type SessionHandler struct {
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler
func NewSessionHandler(params SessionHandlerParams) *SessionHandler {
	return &SessionHandler{
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// LoginRequest carries optional credentials. Missing fields are resolved
// from Secret Manager or the environment.
type LoginRequest struct {
	Email    string `json:"email" validate:"omitempty,email"`
	Password string `json:"password"`
}

// LoginResponse is the outcome of a successful login
type LoginResponse struct {
	Authenticated bool   `json:"authenticated"`
	DisplayName   string `json:"display_name,omitempty"`
}

// Login handles POST /api/v1/session/login
func (h *SessionHandler) Login(c echo.Context) error {
	var req LoginRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.HandleAppError(c, domainerrors.ErrInvalidInput)
		}
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	ctx := c.Request().Context()
	if !h.sessionUC.Login(ctx, req.Email, req.Password) {
		requestLogger(c, h.logger).Warn("Garmin login rejected",
			slog.Bool("explicit_email", req.Email != ""),
		)

		return response.HandleAppError(c, domainerrors.ErrLoginFailed)
	}

	name, _ := h.sessionUC.DisplayName(ctx)

	return response.Success(c, http.StatusOK, LoginResponse{Authenticated: true, DisplayName: name})
}

// DebugLogin handles GET /debug/garmin-login. It always answers 200 and
// reports the outcome in the body.
func (h *SessionHandler) DebugLogin(c echo.Context) error {
	ctx := c.Request().Context()
	if !h.sessionUC.Login(ctx, "", "") {
		return c.JSON(http.StatusOK, map[string]any{
			"status":  "error",
			"message": "Garmin login failed. Check GARMIN_EMAIL and GARMIN_PASSWORD env vars.",
		})
	}

	var displayName any
	if name, ok := h.sessionUC.DisplayName(ctx); ok {
		displayName = name
	}

	return c.JSON(http.StatusOK, map[string]any{
		"status":       "success",
		"message":      "Garmin login successful",
		"display_name": displayName,
	})
}
