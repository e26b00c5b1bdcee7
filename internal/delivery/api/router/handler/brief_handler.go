package handler

import (
	"log/slog"
	"net/http"

	"coach/config"
	"coach/internal/delivery/api/response"
	"coach/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BriefHandlerParams holds dependencies for BriefHandler, injected by Fx.
type BriefHandlerParams struct {
	fx.In

	BriefUC usecase.BriefUsecase
	Config  *config.Config
	Logger  *slog.Logger
}

// BriefHandler serves and publishes coaching briefs.
type BriefHandler struct {
	briefUC usecase.BriefUsecase
	cfg     *config.Config
	logger  *slog.Logger
}

// NewBriefHandler is the constructor for BriefHandler
func NewBriefHandler(params BriefHandlerParams) *BriefHandler {
	return &BriefHandler{
		briefUC: params.BriefUC,
		cfg:     params.Config,
		logger:  params.Logger,
	}
}

// PublishResponse returns the id of the published event.
type PublishResponse struct {
	EventID string `json:"event_id"`
}

// GetBrief handles GET /api/v1/brief?days=N
func (h *BriefHandler) GetBrief(c echo.Context) error {
	days, err := bindDays(c, h.cfg)
	if err != nil {
		return response.ValidationError(c, err)
	}

	brief, err := h.briefUC.Build(c.Request().Context(), days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, brief)
}

// PublishBrief handles POST /api/v1/brief/publish?days=N
func (h *BriefHandler) PublishBrief(c echo.Context) error {
	days, err := bindDays(c, h.cfg)
	if err != nil {
		return response.ValidationError(c, err)
	}

	eventID, err := h.briefUC.Publish(c.Request().Context(), days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requestLogger(c, h.logger).Info("Coaching brief published",
		slog.String("event_id", eventID),
		slog.Int("days", days),
	)

	return response.Success(c, http.StatusAccepted, PublishResponse{EventID: eventID})
}
