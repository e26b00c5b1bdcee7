package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	deliverycontext "coach/internal/delivery/context"
	"coach/internal/domain/entity"
	domainerrors "coach/internal/domain/errors"
	"coach/internal/errors"
	mockService "coach/internal/mocks/service"
	mockUsecase "coach/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type briefServiceFixtures struct {
	service   *briefService
	metrics   *mockUsecase.MockMetricsUsecase
	publisher *mockService.MockBriefPublisher
}

func createTestBriefService(t *testing.T) briefServiceFixtures {
	metrics := mockUsecase.NewMockMetricsUsecase(t)
	publisher := mockService.NewMockBriefPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := NewBriefService(metrics, publisher, logger).(*briefService)
	srv.now = func() time.Time { return time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC) }

	return briefServiceFixtures{
		service:   srv,
		metrics:   metrics,
		publisher: publisher,
	}
}

func TestBriefService_Build(t *testing.T) {
	fx := createTestBriefService(t)
	ctx := context.Background()
	snapshot := &entity.DailySnapshot{Date: "2024-01-10"}
	activities := []entity.Activity{{Date: "2024-01-09", Type: "running"}}

	fx.metrics.EXPECT().TodayStats(ctx).Return(snapshot, nil)
	fx.metrics.EXPECT().RecentActivities(ctx, 3).Return(activities, nil)

	brief, err := fx.service.Build(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 10, 7, 0, 0, 0, time.UTC), brief.GeneratedAt)
	assert.Same(t, snapshot, brief.Snapshot)
	assert.Equal(t, activities, brief.Activities)
}

func TestBriefService_Build_NotLoggedIn(t *testing.T) {
	fx := createTestBriefService(t)
	ctx := context.Background()

	fx.metrics.EXPECT().TodayStats(ctx).Return(nil, domainerrors.ErrNotLoggedIn)

	brief, err := fx.service.Build(ctx, 7)

	assert.Nil(t, brief)
	assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
}

func TestBriefService_Publish(t *testing.T) {
	fx := createTestBriefService(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")

	fx.metrics.EXPECT().TodayStats(ctx).Return(&entity.DailySnapshot{Date: "2024-01-10"}, nil)
	fx.metrics.EXPECT().RecentActivities(ctx, 7).Return([]entity.Activity{}, nil)

	var published *entity.BriefEvent
	fx.publisher.EXPECT().
		PublishBrief(ctx, mock.AnythingOfType("*entity.BriefEvent")).
		Run(func(_ context.Context, event *entity.BriefEvent) { published = event }).
		Return(nil)

	eventID, err := fx.service.Publish(ctx, 7)
	require.NoError(t, err)

	_, parseErr := uuid.Parse(eventID)
	assert.NoError(t, parseErr)
	require.NotNil(t, published)
	assert.Equal(t, eventID, published.EventID)
	assert.Equal(t, "req-123", published.RequestID)
	assert.Equal(t, "2024-01-10", published.Brief.Snapshot.Date)
}

func TestBriefService_Publish_Failure(t *testing.T) {
	fx := createTestBriefService(t)
	ctx := context.Background()

	fx.metrics.EXPECT().TodayStats(ctx).Return(&entity.DailySnapshot{}, nil)
	fx.metrics.EXPECT().RecentActivities(ctx, 7).Return([]entity.Activity{}, nil)
	fx.publisher.EXPECT().PublishBrief(ctx, mock.Anything).Return(errors.New("topic not found"))

	eventID, err := fx.service.Publish(ctx, 7)

	assert.Empty(t, eventID)
	assert.ErrorIs(t, err, domainerrors.ErrPublishFailed)
}
