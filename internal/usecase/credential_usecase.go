// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"coach/internal/domain/entity"
)

// CredentialUsecase resolves secrets from the process cache, the environment
// and the cloud secret store, in that order. Failures are logged, never returned.
type CredentialUsecase interface {
	// Resolve returns the value for secretID, falling back to envVar when set.
	Resolve(ctx context.Context, secretID, envVar string) (string, bool)

	// GarminCredentials resolves the account email and password independently.
	GarminCredentials(ctx context.Context) entity.Credentials
}
