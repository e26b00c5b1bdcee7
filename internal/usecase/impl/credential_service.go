// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"os"
	"strings"

	deliverycontext "coach/internal/delivery/context"
	"coach/internal/domain/entity"
	"coach/internal/domain/service"
	"coach/internal/usecase"
)

// credentialService implements the CredentialUsecase interface.
type credentialService struct {
	cache    service.SecretCache
	store    service.SecretStore
	projects service.ProjectIDSource
	logger   *slog.Logger
}

// NewCredentialService is the constructor for credentialService.
func NewCredentialService(
	cache service.SecretCache,
	store service.SecretStore,
	projects service.ProjectIDSource,
	logger *slog.Logger,
) usecase.CredentialUsecase {
	return &credentialService{
		cache:    cache,
		store:    store,
		projects: projects,
		logger:   logger,
	}
}

func (srv *credentialService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Resolve looks secretID up in the cache, then envVar, then Secret Manager.
func (srv *credentialService) Resolve(ctx context.Context, secretID, envVar string) (string, bool) {
	if value, ok := srv.cache.Secret(secretID); ok {
		return value, true
	}

	if envVar != "" {
		if value := os.Getenv(envVar); value != "" {
			return value, true
		}
	}

	projectID, ok := srv.projectID(ctx)
	if !ok {
		srv.log(ctx).Warn("No cloud project id available, skipping Secret Manager",
			slog.String("secret_id", secretID),
		)

		return "", false
	}

	value, err := srv.store.AccessSecret(ctx, projectID, secretID)
	if err != nil {
		srv.log(ctx).Warn("Failed to access secret",
			slog.String("secret_id", secretID),
			slog.String("project_id", projectID),
			slog.Any("error", err),
		)

		return "", false
	}

	srv.cache.SetSecret(secretID, value)

	return value, true
}

// GarminCredentials resolves the Garmin account email and password.
func (srv *credentialService) GarminCredentials(ctx context.Context) entity.Credentials {
	email, _ := srv.Resolve(ctx, entity.SecretGarminEmail, entity.EnvGarminEmail)
	password, _ := srv.Resolve(ctx, entity.SecretGarminPassword, entity.EnvGarminPassword)

	return entity.Credentials{Email: email, Password: password}
}

// projectID checks the environment, the cache and finally the metadata server.
func (srv *credentialService) projectID(ctx context.Context) (string, bool) {
	for _, key := range []string{entity.EnvGoogleCloudProject, entity.EnvGCPProject} {
		if value := strings.TrimSpace(os.Getenv(key)); value != "" {
			return value, true
		}
	}

	if projectID, ok := srv.cache.ProjectID(); ok {
		return projectID, true
	}

	projectID, err := srv.projects.ProjectID(ctx)
	if err != nil {
		srv.log(ctx).Warn("Could not detect project id from metadata server", slog.Any("error", err))

		return "", false
	}
	srv.cache.SetProjectID(projectID)

	return projectID, true
}
