package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"coach/internal/domain/entity"
	domainerrors "coach/internal/domain/errors"
	"coach/internal/errors"
	mockService "coach/internal/mocks/service"
	mockUsecase "coach/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

type metricsServiceFixtures struct {
	service *metricsService
	client  *mockService.MockConnectClient
}

// createTestMetricsService pins "today" to 2024-01-10 and provides a session.
func createTestMetricsService(t *testing.T) metricsServiceFixtures {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	client := mockService.NewMockConnectClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := func() time.Time { return time.Date(2024, 1, 10, 9, 30, 0, 0, time.Local) }

	sessions.EXPECT().Client().Return(client, true).Maybe()

	return metricsServiceFixtures{
		service: newMetricsService(sessions, logger, now),
		client:  client,
	}
}

func sleepFor(date string, total int) *entity.SleepData {
	return &entity.SleepData{DailySleepDTO: &entity.DailySleep{
		CalendarDate:       date,
		SleepTimeSeconds:   ptr(total),
		DeepSleepSeconds:   ptr(1800),
		LightSleepSeconds:  ptr(3600),
		RemSleepSeconds:    ptr(1500),
		SleepScoreFeedback: "POSITIVE_LONG_AND_DEEP",
		SleepScores: &entity.SleepScores{
			Overall:        &entity.SleepScore{Value: ptr(82), QualifierKey: "GOOD"},
			DeepPercentage: &entity.SleepScore{QualifierKey: "EXCELLENT"},
			AwakeCount:     &entity.SleepScore{QualifierKey: "FAIR"},
		},
	}}
}

func TestMetricsService_NotLoggedIn(t *testing.T) {
	sessions := mockUsecase.NewMockSessionUsecase(t)
	sessions.EXPECT().Client().Return(nil, false)
	srv := NewMetricsService(sessions, slog.New(slog.NewTextHandler(io.Discard, nil)))

	snapshot, err := srv.TodayStats(context.Background())
	assert.Nil(t, snapshot)
	assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)

	activities, err := srv.RecentActivities(context.Background(), 7)
	assert.Nil(t, activities)
	assert.ErrorIs(t, err, domainerrors.ErrNotLoggedIn)
}

func TestMetricsService_TodayStats_Success(t *testing.T) {
	fx := createTestMetricsService(t)
	ctx := context.Background()

	fx.client.EXPECT().UserSummary(ctx, "2024-01-10").Return(&entity.UserSummary{
		RestingHeartRate:                 ptr(48),
		LastSevenDaysAvgRestingHeartRate: ptr(50),
		BodyBatteryMostRecentValue:       ptr(64),
		BodyBatteryChargedValue:          ptr(55),
		BodyBatteryDrainedValue:          ptr(30),
		BodyBatteryHighestValue:          ptr(90),
		BodyBatteryLowestValue:           ptr(20),
		AverageStressLevel:               ptr(31),
		MaxStressLevel:                   ptr(88),
		HighStressDuration:               ptr(1530),
	}, nil)
	fx.client.EXPECT().SleepData(ctx, "2024-01-10").Return(sleepFor("2024-01-10", 7200), nil)
	fx.client.EXPECT().TrainingReadiness(ctx, "2024-01-10").Return([]entity.TrainingReadiness{
		{
			Score:                      ptr(71),
			Level:                      "HIGH",
			FeedbackShort:              "WELL_RECOVERED",
			RecoveryTime:               ptr(90),
			HRVWeeklyAverage:           ptr(62),
			SleepScoreFactorFeedback:   "GOOD",
			RecoveryTimeFactorFeedback: "MODERATE",
			ACWRFactorFeedback:         "VERY_GOOD",
		},
		{Score: ptr(10)},
	}, nil)

	snapshot, err := fx.service.TodayStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-10", snapshot.Date)

	require.NotNil(t, snapshot.Body)
	assert.Equal(t, 48, *snapshot.Body.RestingHeartRate)
	assert.Equal(t, 50, *snapshot.Body.RestingHeartRate7DayAvg)
	assert.Equal(t, entity.BodyBattery{Current: ptr(64), Charged: ptr(55), Drained: ptr(30), Highest: ptr(90), Lowest: ptr(20)}, snapshot.Body.BodyBattery)
	assert.Equal(t, 31, *snapshot.Body.Stress.Average)
	assert.Equal(t, 88, *snapshot.Body.Stress.Max)
	assert.InDelta(t, 25.5, *snapshot.Body.Stress.HighStressMinutes, 1e-9)

	require.NotNil(t, snapshot.Sleep)
	assert.Equal(t, "2024-01-10", snapshot.Sleep.Date)
	assert.Equal(t, 82, *snapshot.Sleep.Score)
	assert.Equal(t, "GOOD", snapshot.Sleep.Quality)
	assert.InDelta(t, 2.0, snapshot.Sleep.DurationHours, 1e-9)
	require.NotNil(t, snapshot.Sleep.Feedback)
	assert.Equal(t, "Long and deep sleep, great for recovery.", *snapshot.Sleep.Feedback)
	assert.Equal(t, entity.SleepStage{Pct: 25, Quality: "EXCELLENT"}, snapshot.Sleep.Stages.Deep)
	assert.Equal(t, entity.SleepStage{Pct: 50}, snapshot.Sleep.Stages.Light)
	assert.Equal(t, 21, snapshot.Sleep.Stages.REM.Pct)
	assert.Equal(t, entity.SleepStage{Pct: 0, Quality: "FAIR"}, snapshot.Sleep.Stages.Awake)

	require.NotNil(t, snapshot.Recovery)
	assert.Equal(t, 71, *snapshot.Recovery.Score)
	assert.Equal(t, "HIGH", snapshot.Recovery.Level)
	assert.Equal(t, "WELL_RECOVERED", snapshot.Recovery.Feedback)
	assert.InDelta(t, 1.5, *snapshot.Recovery.RecoveryHours, 1e-9)
	assert.Equal(t, 62, *snapshot.Recovery.HRVWeeklyAvg)
	assert.Equal(t, entity.RecoveryFactors{Sleep: "GOOD", RecoveryTime: "MODERATE", TrainingLoad: "VERY_GOOD"}, snapshot.Recovery.Factors)
}

func TestMetricsService_TodayStats_SleepScanStopsAtFirstRecordedNight(t *testing.T) {
	fx := createTestMetricsService(t)
	ctx := context.Background()

	fx.client.EXPECT().UserSummary(ctx, "2024-01-10").Return(nil, nil)
	fx.client.EXPECT().TrainingReadiness(ctx, "2024-01-10").Return(nil, nil)

	// Days 0-2 have partial records without sleep time; day 3 is the first usable one.
	for _, date := range []string{"2024-01-10", "2024-01-09", "2024-01-08"} {
		partial := sleepFor(date, 0)
		fx.client.EXPECT().SleepData(ctx, date).Return(partial, nil).Once()
	}
	fx.client.EXPECT().SleepData(ctx, "2024-01-07").Return(sleepFor("2024-01-07", 7200), nil).Once()

	snapshot, err := fx.service.TodayStats(ctx)
	require.NoError(t, err)

	require.NotNil(t, snapshot.Sleep)
	assert.Equal(t, "2024-01-07", snapshot.Sleep.Date)
	assert.Nil(t, snapshot.Body)
	assert.Nil(t, snapshot.Recovery)
	fx.client.AssertNotCalled(t, "SleepData", ctx, "2024-01-06")
}

func TestMetricsService_TodayStats_NoSleepInWindow(t *testing.T) {
	fx := createTestMetricsService(t)
	ctx := context.Background()

	fx.client.EXPECT().UserSummary(ctx, mock.Anything).Return(nil, nil)
	fx.client.EXPECT().TrainingReadiness(ctx, mock.Anything).Return([]entity.TrainingReadiness{}, nil)
	fx.client.EXPECT().SleepData(ctx, mock.Anything).Return(&entity.SleepData{}, nil).Times(7)

	snapshot, err := fx.service.TodayStats(ctx)
	require.NoError(t, err)

	assert.Nil(t, snapshot.Sleep)
	assert.Nil(t, snapshot.Recovery)
}

func TestMetricsService_TodayStats_PartialFailureIsolation(t *testing.T) {
	fx := createTestMetricsService(t)
	ctx := context.Background()

	fx.client.EXPECT().UserSummary(ctx, "2024-01-10").Return(&entity.UserSummary{RestingHeartRate: ptr(51)}, nil)
	fx.client.EXPECT().SleepData(ctx, mock.Anything).Return(nil, errors.New("502 bad gateway"))
	fx.client.EXPECT().TrainingReadiness(ctx, "2024-01-10").Return(nil, errors.New("timeout"))

	snapshot, err := fx.service.TodayStats(ctx)
	require.NoError(t, err)

	require.NotNil(t, snapshot.Body)
	assert.Equal(t, 51, *snapshot.Body.RestingHeartRate)
	assert.Nil(t, snapshot.Body.RestingHeartRate7DayAvg)
	assert.Nil(t, snapshot.Body.Stress.HighStressMinutes)
	assert.Nil(t, snapshot.Sleep)
	assert.Nil(t, snapshot.Recovery)
}

func TestMetricsService_TodayStats_RecoveryWithoutRecoveryTime(t *testing.T) {
	fx := createTestMetricsService(t)
	ctx := context.Background()

	fx.client.EXPECT().UserSummary(ctx, mock.Anything).Return(nil, nil)
	fx.client.EXPECT().SleepData(ctx, mock.Anything).Return(nil, nil)
	fx.client.EXPECT().TrainingReadiness(ctx, "2024-01-10").Return([]entity.TrainingReadiness{
		{Score: ptr(40), RecoveryTime: ptr(0)},
	}, nil)

	snapshot, err := fx.service.TodayStats(ctx)
	require.NoError(t, err)

	require.NotNil(t, snapshot.Recovery)
	assert.Equal(t, 40, *snapshot.Recovery.Score)
	assert.Nil(t, snapshot.Recovery.RecoveryHours)
	assert.Nil(t, snapshot.Recovery.HRVWeeklyAvg)
}

func TestMetricsService_TodayStats_Idempotent(t *testing.T) {
	fx := createTestMetricsService(t)
	ctx := context.Background()

	fx.client.EXPECT().UserSummary(ctx, mock.Anything).Return(&entity.UserSummary{RestingHeartRate: ptr(49)}, nil)
	fx.client.EXPECT().SleepData(ctx, "2024-01-10").Return(sleepFor("2024-01-10", 7200), nil)
	fx.client.EXPECT().TrainingReadiness(ctx, mock.Anything).Return([]entity.TrainingReadiness{{Score: ptr(70)}}, nil)

	first, err := fx.service.TodayStats(ctx)
	require.NoError(t, err)
	second, err := fx.service.TodayStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestMetricsService_RecentActivities_Filtering(t *testing.T) {
	fx := createTestMetricsService(t)
	ctx := context.Background()

	fx.client.EXPECT().Activities(ctx, 0, 14).Return([]entity.RawActivity{
		{ActivityName: "Tempo", StartTimeLocal: "2024-01-09T18:00:00", Duration: ptr(1835.0), ActivityType: &entity.ActivityType{TypeKey: "running"}},
		{ActivityName: "Boundary", StartTimeLocal: "2024-01-04T08:00:00", Duration: ptr(600.0), ActivityType: &entity.ActivityType{TypeKey: "cycling"}},
		{ActivityName: "Too old", StartTimeLocal: "2024-01-03T08:00:00", Duration: ptr(600.0)},
		{ActivityName: "No start time", Duration: ptr(600.0)},
		{StartTimeLocal: "2024-01-05 07:15:00"},
	}, nil)

	activities, err := fx.service.RecentActivities(ctx, 7)
	require.NoError(t, err)

	assert.Equal(t, []entity.Activity{
		{Date: "2024-01-09", Type: "running", Name: "Tempo", DurationMinutes: 30.6},
		{Date: "2024-01-04", Type: "cycling", Name: "Boundary", DurationMinutes: 10},
		{Date: "2024-01-05", Type: entity.UnknownActivityType, Name: "", DurationMinutes: 0},
	}, activities)
}

func TestMetricsService_RecentActivities_DefaultWindow(t *testing.T) {
	fx := createTestMetricsService(t)
	ctx := context.Background()

	fx.client.EXPECT().Activities(ctx, 0, 14).Return(nil, nil)

	activities, err := fx.service.RecentActivities(ctx, 0)
	require.NoError(t, err)
	assert.NotNil(t, activities)
	assert.Empty(t, activities)
}

func TestMetricsService_RecentActivities_FetchFailure(t *testing.T) {
	fx := createTestMetricsService(t)
	ctx := context.Background()

	fx.client.EXPECT().Activities(ctx, 0, 2).Return(nil, errors.New("connection reset"))

	activities, err := fx.service.RecentActivities(ctx, 1)
	require.NoError(t, err)
	assert.NotNil(t, activities)
	assert.Empty(t, activities)
}
