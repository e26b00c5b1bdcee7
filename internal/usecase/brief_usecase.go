package usecase

import (
	"context"

	"coach/internal/domain/entity"
)

// BriefUsecase assembles coaching briefs and hands them to the coaching component.
type BriefUsecase interface {
	Build(ctx context.Context, days int) (*entity.CoachingBrief, error)

	// Publish builds a brief and publishes it as an event, returning the event id.
	Publish(ctx context.Context, days int) (string, error)
}
