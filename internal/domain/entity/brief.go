package entity

import "time"

// CoachingBrief bundles what the coaching component needs for one decision.
type CoachingBrief struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Snapshot    *DailySnapshot `json:"snapshot"`
	Activities  []Activity     `json:"activities"`
}

// BriefEvent is the message published for downstream consumers.
type BriefEvent struct {
	EventID   string         `json:"event_id"`
	RequestID string         `json:"request_id,omitempty"`
	Brief     *CoachingBrief `json:"brief"`
}
