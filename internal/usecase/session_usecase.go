package usecase

import (
	"context"

	"coach/internal/domain/service"
)

// SessionUsecase owns the single Garmin Connect session of the process.
type SessionUsecase interface {
	// Login discards the current session and establishes a new one, first by
	// resuming stored tokens and then by a credential login. Empty arguments
	// are resolved through the CredentialUsecase.
	Login(ctx context.Context, email, password string) bool

	// DisplayName returns the account's name, or false without a session or
	// when the upstream call fails.
	DisplayName(ctx context.Context) (string, bool)

	// Client returns the current session handle.
	Client() (service.ConnectClient, bool)
}
