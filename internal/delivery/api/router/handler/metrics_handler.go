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

// MetricsHandlerParams holds dependencies for MetricsHandler, injected by Fx.
type MetricsHandlerParams struct {
	fx.In

	MetricsUC usecase.MetricsUsecase
	Config    *config.Config
	Logger    *slog.Logger
}

// MetricsHandler serves the daily snapshot and recent activities.
type MetricsHandler struct {
	metricsUC usecase.MetricsUsecase
	cfg       *config.Config
	logger    *slog.Logger
}

// NewMetricsHandler is the constructor for MetricsHandler
func NewMetricsHandler(params MetricsHandlerParams) *MetricsHandler {
	return &MetricsHandler{
		metricsUC: params.MetricsUC,
		cfg:       params.Config,
		logger:    params.Logger,
	}
}

// TodayStats handles GET /api/v1/stats/today
func (h *MetricsHandler) TodayStats(c echo.Context) error {
	snapshot, err := h.metricsUC.TodayStats(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, snapshot)
}

// RecentActivities handles GET /api/v1/activities?days=N
func (h *MetricsHandler) RecentActivities(c echo.Context) error {
	days, err := bindDays(c, h.cfg)
	if err != nil {
		return response.ValidationError(c, err)
	}

	activities, err := h.metricsUC.RecentActivities(c.Request().Context(), days)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	requestLogger(c, h.logger).Debug("Recent activities served",
		slog.Int("days", days),
		slog.Int("count", len(activities)),
	)

	return response.Success(c, http.StatusOK, activities)
}
