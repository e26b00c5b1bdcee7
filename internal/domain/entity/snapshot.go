package entity

// DailySnapshot is the normalized health summary for one calendar date.
// A nil sub-record means its upstream fetch failed or returned nothing usable.
type DailySnapshot struct {
	Date     string           `json:"date"`
	Body     *BodyMetrics     `json:"body"`
	Sleep    *SleepMetrics    `json:"sleep"`
	Recovery *RecoveryMetrics `json:"recovery"`
}

// BodyMetrics is derived from the daily user summary.
type BodyMetrics struct {
	RestingHeartRate        *int           `json:"resting_hr"`
	RestingHeartRate7DayAvg *int           `json:"resting_hr_7d_avg"`
	BodyBattery             BodyBattery    `json:"body_battery"`
	Stress                  StressSnapshot `json:"stress"`
}

type BodyBattery struct {
	Current *int `json:"current"`
	Charged *int `json:"charged"`
	Drained *int `json:"drained"`
	Highest *int `json:"highest"`
	Lowest  *int `json:"lowest"`
}

type StressSnapshot struct {
	Average           *int     `json:"average"`
	Max               *int     `json:"max"`
	HighStressMinutes *float64 `json:"high_stress_minutes"`
}

// SleepMetrics describes the most recent night with recorded sleep.
type SleepMetrics struct {
	Date          string      `json:"date"`
	Score         *int        `json:"score"`
	Quality       string      `json:"quality,omitempty"`
	DurationHours float64     `json:"duration_hours"`
	Feedback      *string     `json:"feedback"`
	Stages        SleepStages `json:"stages"`
}

type SleepStages struct {
	Deep  SleepStage `json:"deep"`
	Light SleepStage `json:"light"`
	REM   SleepStage `json:"rem"`
	Awake SleepStage `json:"awake"`
}

// SleepStage holds a stage's share of total sleep time, in whole percent.
type SleepStage struct {
	Pct     int    `json:"pct"`
	Quality string `json:"quality,omitempty"`
}

// RecoveryMetrics is derived from the newest training readiness entry.
type RecoveryMetrics struct {
	Score         *int            `json:"score"`
	Level         string          `json:"level,omitempty"`
	Feedback      string          `json:"feedback,omitempty"`
	RecoveryHours *float64        `json:"recovery_hours"`
	HRVWeeklyAvg  *int            `json:"hrv_weekly_avg"`
	Factors       RecoveryFactors `json:"factors"`
}

// RecoveryFactors are the feedback codes of the readiness contributors.
type RecoveryFactors struct {
	Sleep        string `json:"sleep,omitempty"`
	RecoveryTime string `json:"recovery_time,omitempty"`
	TrainingLoad string `json:"training_load,omitempty"`
}
