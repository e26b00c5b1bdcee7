package entity

// Activity is a simplified recorded workout.
type Activity struct {
	Date            string  `json:"date"`
	Type            string  `json:"type"`
	Name            string  `json:"name"`
	DurationMinutes float64 `json:"duration_minutes"`
}

// UnknownActivityType is used when the upstream entry carries no type key.
const UnknownActivityType = "unknown"
