package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "coach/internal/delivery/context"
	"coach/internal/domain/entity"
	domainerrors "coach/internal/domain/errors"
	"coach/internal/domain/feedback"
	"coach/internal/domain/service"
	"coach/internal/usecase"
	"coach/internal/util"
)

const (
	sleepScanDays     = 7
	defaultRecentDays = 7
	activityOverfetch = 2
	secondsPerHour    = 3600
	secondsPerMinute  = 60
	minutesPerHour    = 60
	durationPrecision = 1
)

// metricsService implements the MetricsUsecase interface.
type metricsService struct {
	sessions usecase.SessionUsecase
	logger   *slog.Logger
	now      func() time.Time
}

// NewMetricsService is the constructor for metricsService.
func NewMetricsService(sessions usecase.SessionUsecase, logger *slog.Logger) usecase.MetricsUsecase {
	return newMetricsService(sessions, logger, time.Now)
}

func newMetricsService(sessions usecase.SessionUsecase, logger *slog.Logger, now func() time.Time) *metricsService {
	return &metricsService{
		sessions: sessions,
		logger:   logger,
		now:      now,
	}
}

func (srv *metricsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// bestEffort runs fetch and turns a failure into the zero value, logging it
// under the metric name.
func bestEffort[T any](ctx context.Context, logger *slog.Logger, metric string, fetch func(context.Context) (T, error)) T {
	result, err := fetch(ctx)
	if err != nil {
		logger.Error("Failed to fetch Garmin metric", slog.String("metric", metric), slog.Any("error", err))

		var zero T

		return zero
	}

	return result
}

// TodayStats builds the snapshot for the local calendar date.
func (srv *metricsService) TodayStats(ctx context.Context) (*entity.DailySnapshot, error) {
	client, ok := srv.sessions.Client()
	if !ok {
		return nil, domainerrors.ErrNotLoggedIn
	}

	now := srv.now()
	today := now.Format(entity.DateLayout)
	logger := srv.log(ctx)

	snapshot := &entity.DailySnapshot{
		Date: today,
		Body: bestEffort(ctx, logger, "body", func(ctx context.Context) (*entity.BodyMetrics, error) {
			return fetchBody(ctx, client, today)
		}),
		Sleep: bestEffort(ctx, logger, "sleep", func(ctx context.Context) (*entity.SleepMetrics, error) {
			return scanSleep(ctx, client, now)
		}),
		Recovery: bestEffort(ctx, logger, "recovery", func(ctx context.Context) (*entity.RecoveryMetrics, error) {
			return fetchRecovery(ctx, client, today)
		}),
	}

	return snapshot, nil
}

// RecentActivities returns activities started within the trailing window of
// days calendar days, today included.
func (srv *metricsService) RecentActivities(ctx context.Context, days int) ([]entity.Activity, error) {
	client, ok := srv.sessions.Client()
	if !ok {
		return nil, domainerrors.ErrNotLoggedIn
	}

	if days < 1 {
		days = defaultRecentDays
	}

	// Over-fetch since upstream ordering and paging are not strictly by date.
	raw := bestEffort(ctx, srv.log(ctx), "activities", func(ctx context.Context) ([]entity.RawActivity, error) {
		return client.Activities(ctx, 0, days*activityOverfetch)
	})

	cutoff := util.DaysAgo(srv.now(), days-1, entity.DateLayout)
	activities := make([]entity.Activity, 0, len(raw))
	for _, item := range raw {
		if item.StartTimeLocal == "" {
			continue
		}

		date := util.DatePrefix(item.StartTimeLocal)
		if date < cutoff {
			continue
		}

		activityType := entity.UnknownActivityType
		if item.ActivityType != nil && item.ActivityType.TypeKey != "" {
			activityType = item.ActivityType.TypeKey
		}

		activities = append(activities, entity.Activity{
			Date:            date,
			Type:            activityType,
			Name:            item.ActivityName,
			DurationMinutes: util.Round(util.Deref(item.Duration)/secondsPerMinute, durationPrecision),
		})
	}

	return activities, nil
}

func fetchBody(ctx context.Context, client service.ConnectClient, date string) (*entity.BodyMetrics, error) {
	summary, err := client.UserSummary(ctx, date)
	if err != nil || summary == nil {
		return nil, err
	}

	var highStressMinutes *float64
	if summary.HighStressDuration != nil {
		minutes := util.Round(float64(*summary.HighStressDuration)/secondsPerMinute, durationPrecision)
		highStressMinutes = &minutes
	}

	return &entity.BodyMetrics{
		RestingHeartRate:        summary.RestingHeartRate,
		RestingHeartRate7DayAvg: summary.LastSevenDaysAvgRestingHeartRate,
		BodyBattery: entity.BodyBattery{
			Current: summary.BodyBatteryMostRecentValue,
			Charged: summary.BodyBatteryChargedValue,
			Drained: summary.BodyBatteryDrainedValue,
			Highest: summary.BodyBatteryHighestValue,
			Lowest:  summary.BodyBatteryLowestValue,
		},
		Stress: entity.StressSnapshot{
			Average:           summary.AverageStressLevel,
			Max:               summary.MaxStressLevel,
			HighStressMinutes: highStressMinutes,
		},
	}, nil
}

// scanSleep walks back from today and reports the first night with recorded
// sleep. An upstream error ends the scan.
func scanSleep(ctx context.Context, client service.ConnectClient, today time.Time) (*entity.SleepMetrics, error) {
	for offset := range sleepScanDays {
		date := util.DaysAgo(today, offset, entity.DateLayout)

		data, err := client.SleepData(ctx, date)
		if err != nil {
			return nil, err
		}
		if data == nil || data.DailySleepDTO == nil {
			continue
		}

		total := util.Deref(data.DailySleepDTO.SleepTimeSeconds)
		if total <= 0 {
			continue
		}

		return buildSleep(date, data.DailySleepDTO, total), nil
	}

	return nil, nil
}

func buildSleep(date string, sleep *entity.DailySleep, total int) *entity.SleepMetrics {
	scores := sleep.SleepScores
	if scores == nil {
		scores = &entity.SleepScores{}
	}

	var score *int
	if scores.Overall != nil {
		score = scores.Overall.Value
	}

	return &entity.SleepMetrics{
		Date:          date,
		Score:         score,
		Quality:       qualifier(scores.Overall),
		DurationHours: util.Round(float64(total)/secondsPerHour, durationPrecision),
		Feedback:      feedback.Humanize(sleep.SleepScoreFeedback),
		Stages: entity.SleepStages{
			Deep:  sleepStage(sleep.DeepSleepSeconds, total, scores.DeepPercentage),
			Light: sleepStage(sleep.LightSleepSeconds, total, scores.LightPercentage),
			REM:   sleepStage(sleep.RemSleepSeconds, total, scores.RemPercentage),
			Awake: sleepStage(sleep.AwakeSleepSeconds, total, scores.AwakeCount),
		},
	}
}

func sleepStage(seconds *int, total int, score *entity.SleepScore) entity.SleepStage {
	return entity.SleepStage{
		Pct:     util.Percent(util.Deref(seconds), total),
		Quality: qualifier(score),
	}
}

func qualifier(score *entity.SleepScore) string {
	if score == nil {
		return ""
	}

	return score.QualifierKey
}

// fetchRecovery maps the newest training readiness entry. The upstream list
// is newest first.
func fetchRecovery(ctx context.Context, client service.ConnectClient, date string) (*entity.RecoveryMetrics, error) {
	readiness, err := client.TrainingReadiness(ctx, date)
	if err != nil || len(readiness) == 0 {
		return nil, err
	}
	latest := readiness[0]

	var recoveryHours *float64
	if minutes := util.Deref(latest.RecoveryTime); minutes != 0 {
		hours := util.Round(float64(minutes)/minutesPerHour, durationPrecision)
		recoveryHours = &hours
	}

	return &entity.RecoveryMetrics{
		Score:         latest.Score,
		Level:         latest.Level,
		Feedback:      latest.FeedbackShort,
		RecoveryHours: recoveryHours,
		HRVWeeklyAvg:  latest.HRVWeeklyAverage,
		Factors: entity.RecoveryFactors{
			Sleep:        latest.SleepScoreFactorFeedback,
			RecoveryTime: latest.RecoveryTimeFactorFeedback,
			TrainingLoad: latest.ACWRFactorFeedback,
		},
	}, nil
}
