package usecase

import (
	"context"

	"coach/internal/domain/entity"
)

// MetricsUsecase reshapes Garmin Connect data for the coaching component.
// Both operations return ErrNotLoggedIn without a session and otherwise
// degrade upstream failures to absent sub-records.
type MetricsUsecase interface {
	TodayStats(ctx context.Context) (*entity.DailySnapshot, error)
	RecentActivities(ctx context.Context, days int) ([]entity.Activity, error)
}
