package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "coach/internal/delivery/context"
	"coach/internal/domain/entity"
	domainerrors "coach/internal/domain/errors"
	"coach/internal/domain/service"
	"coach/internal/errors"
	"coach/internal/usecase"

	"github.com/google/uuid"
)

// briefService implements the BriefUsecase interface.
type briefService struct {
	metrics   usecase.MetricsUsecase
	publisher service.BriefPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewBriefService is the constructor for briefService.
func NewBriefService(
	metrics usecase.MetricsUsecase,
	publisher service.BriefPublisher,
	logger *slog.Logger,
) usecase.BriefUsecase {
	return &briefService{
		metrics:   metrics,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

func (srv *briefService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *briefService) Build(ctx context.Context, days int) (*entity.CoachingBrief, error) {
	snapshot, err := srv.metrics.TodayStats(ctx)
	if err != nil {
		return nil, err
	}

	activities, err := srv.metrics.RecentActivities(ctx, days)
	if err != nil {
		return nil, err
	}

	return &entity.CoachingBrief{
		GeneratedAt: srv.now().UTC(),
		Snapshot:    snapshot,
		Activities:  activities,
	}, nil
}

func (srv *briefService) Publish(ctx context.Context, days int) (string, error) {
	brief, err := srv.Build(ctx, days)
	if err != nil {
		return "", err
	}

	event := &entity.BriefEvent{
		EventID:   uuid.New().String(),
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		Brief:     brief,
	}

	if err := srv.publisher.PublishBrief(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish coaching brief",
			slog.String("event_id", event.EventID),
			slog.Any("error", err),
		)

		return "", errors.Wrap(domainerrors.ErrPublishFailed, err.Error())
	}

	srv.log(ctx).Info("Published coaching brief", slog.String("event_id", event.EventID))

	return event.EventID, nil
}
