package service

import (
	"context"

	"coach/internal/domain/entity"
)

// ConnectClient is an authenticated Garmin Connect session handle.
// A nil result with a nil error means the upstream had no data for the request.
type ConnectClient interface {
	FullName(ctx context.Context) (string, error)
	UserSummary(ctx context.Context, date string) (*entity.UserSummary, error)
	SleepData(ctx context.Context, date string) (*entity.SleepData, error)
	TrainingReadiness(ctx context.Context, date string) ([]entity.TrainingReadiness, error)
	Activities(ctx context.Context, start, limit int) ([]entity.RawActivity, error)

	// Dump persists the session tokens into store, replacing what was there.
	Dump(ctx context.Context, store TokenStore) error
}

// ConnectClientFactory constructs session handles.
type ConnectClientFactory interface {
	// Resume restores a session from tokens previously dumped into store.
	Resume(ctx context.Context, store TokenStore) (ConnectClient, error)

	// Login performs a fresh credential login.
	Login(ctx context.Context, creds entity.Credentials) (ConnectClient, error)
}
