// Package pubsub publishes coaching briefs to the downstream coaching component.
package pubsub

import (
	"context"
	"log/slog"

	"coach/config"
	"coach/internal/domain/entity"
	"coach/internal/domain/service"
	"coach/internal/errors"

	"go.uber.org/fx"
)

// Message attribute keys shared by the publishers.
const (
	attrEventID      = "event_id"
	attrRequestID    = "request_id"
	attrSnapshotDate = "snapshot_date"
)

// noopPublisher is used when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func (p *noopPublisher) PublishBrief(_ context.Context, event *entity.BriefEvent) error {
	p.logger.Debug("[NoopPubSub] Brief publishing disabled, skipping",
		slog.String("event_id", event.EventID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for BriefPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBriefPublisher creates a BriefPublisher based on configuration
func NewBriefPublisher(params PublisherParams) (service.BriefPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		logger.Info("PubSub not configured, using no-op publisher")

		return &noopPublisher{logger: logger}, nil
	}

	var publisher service.BriefPublisher
	var err error

	switch cfg.Provider {
	case entity.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		publisher = NewLocalHTTPPublisher(cfg.LocalEndpoint, logger)

	case entity.PubSubProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		publisher, err = NewGooglePubSubPublisher(params.Ctx, cfg.ProjectID, cfg.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing BriefPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func eventAttributes(event *entity.BriefEvent) map[string]string {
	attributes := map[string]string{attrEventID: event.EventID}
	if event.RequestID != "" {
		attributes[attrRequestID] = event.RequestID
	}
	if event.Brief != nil && event.Brief.Snapshot != nil {
		attributes[attrSnapshotDate] = event.Brief.Snapshot.Date
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewBriefPublisher),
)
