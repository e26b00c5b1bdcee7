package entity

// The types below mirror the Garmin Connect JSON payloads the aggregator reads.
// Nullable upstream values are pointers so "missing" and "zero" stay distinct.

// SocialProfile is the authenticated account's public profile.
type SocialProfile struct {
	DisplayName string `json:"displayName"`
	FullName    string `json:"fullName"`
}

// UserSummary is the daily summary record for one calendar date.
type UserSummary struct {
	CalendarDate                     string `json:"calendarDate"`
	RestingHeartRate                 *int   `json:"restingHeartRate"`
	LastSevenDaysAvgRestingHeartRate *int   `json:"lastSevenDaysAvgRestingHeartRate"`
	BodyBatteryMostRecentValue       *int   `json:"bodyBatteryMostRecentValue"`
	BodyBatteryChargedValue          *int   `json:"bodyBatteryChargedValue"`
	BodyBatteryDrainedValue          *int   `json:"bodyBatteryDrainedValue"`
	BodyBatteryHighestValue          *int   `json:"bodyBatteryHighestValue"`
	BodyBatteryLowestValue           *int   `json:"bodyBatteryLowestValue"`
	AverageStressLevel               *int   `json:"averageStressLevel"`
	MaxStressLevel                   *int   `json:"maxStressLevel"`
	HighStressDuration               *int   `json:"highStressDuration"`
}

// SleepData is the envelope returned by the daily sleep endpoint.
type SleepData struct {
	DailySleepDTO *DailySleep `json:"dailySleepDTO"`
}

type DailySleep struct {
	CalendarDate       string       `json:"calendarDate"`
	SleepTimeSeconds   *int         `json:"sleepTimeSeconds"`
	DeepSleepSeconds   *int         `json:"deepSleepSeconds"`
	LightSleepSeconds  *int         `json:"lightSleepSeconds"`
	RemSleepSeconds    *int         `json:"remSleepSeconds"`
	AwakeSleepSeconds  *int         `json:"awakeSleepSeconds"`
	SleepScoreFeedback string       `json:"sleepScoreFeedback"`
	SleepScores        *SleepScores `json:"sleepScores"`
}

type SleepScores struct {
	Overall         *SleepScore `json:"overall"`
	DeepPercentage  *SleepScore `json:"deepPercentage"`
	LightPercentage *SleepScore `json:"lightPercentage"`
	RemPercentage   *SleepScore `json:"remPercentage"`
	AwakeCount      *SleepScore `json:"awakeCount"`
}

type SleepScore struct {
	Value        *int   `json:"value"`
	QualifierKey string `json:"qualifierKey"`
}

// TrainingReadiness is one readiness evaluation; the endpoint returns a list.
type TrainingReadiness struct {
	CalendarDate               string `json:"calendarDate"`
	Score                      *int   `json:"score"`
	Level                      string `json:"level"`
	FeedbackShort              string `json:"feedbackShort"`
	RecoveryTime               *int   `json:"recoveryTime"`
	HRVWeeklyAverage           *int   `json:"hrvWeeklyAverage"`
	SleepScoreFactorFeedback   string `json:"sleepScoreFactorFeedback"`
	RecoveryTimeFactorFeedback string `json:"recoveryTimeFactorFeedback"`
	ACWRFactorFeedback         string `json:"acwrFactorFeedback"`
}

// RawActivity is one entry of the activity search endpoint.
type RawActivity struct {
	ActivityID     int64         `json:"activityId"`
	ActivityName   string        `json:"activityName"`
	StartTimeLocal string        `json:"startTimeLocal"`
	Duration       *float64      `json:"duration"`
	ActivityType   *ActivityType `json:"activityType"`
}

type ActivityType struct {
	TypeKey string `json:"typeKey"`
}
