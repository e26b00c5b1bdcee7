package service

import (
	"context"

	"coach/internal/domain/entity"
)

// BriefPublisher defines the interface for publishing coaching briefs to a message queue
type BriefPublisher interface {
	// PublishBrief publishes a brief for the downstream coaching component
	PublishBrief(ctx context.Context, event *entity.BriefEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
