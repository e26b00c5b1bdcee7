package impl

import (
	"context"
	"log/slog"
	"sync"

	deliverycontext "coach/internal/delivery/context"
	"coach/internal/domain/entity"
	"coach/internal/domain/service"
	"coach/internal/usecase"
)

// sessionService implements the SessionUsecase interface. It holds at most
// one handle; the handle is set if and only if the last Login succeeded.
type sessionService struct {
	factory     service.ConnectClientFactory
	store       service.TokenStore
	credentials usecase.CredentialUsecase
	logger      *slog.Logger

	mu     sync.RWMutex
	client service.ConnectClient
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	factory service.ConnectClientFactory,
	store service.TokenStore,
	credentials usecase.CredentialUsecase,
	logger *slog.Logger,
) usecase.SessionUsecase {
	return &sessionService{
		factory:     factory,
		store:       store,
		credentials: credentials,
		logger:      logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login replaces the current session. Concurrent logins are serialized.
func (srv *sessionService) Login(ctx context.Context, email, password string) bool {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.client = nil
	logger := srv.log(ctx)

	creds := entity.Credentials{Email: email, Password: password}
	if !creds.Complete() {
		creds = creds.Merge(srv.credentials.GarminCredentials(ctx))
	}

	if srv.store.Exists(ctx) {
		client, err := srv.factory.Resume(ctx, srv.store)
		if err == nil {
			logger.Info("Resumed Garmin session from token store", slog.String("token_store", srv.store.Location()))
			srv.client = client

			return true
		}
		logger.Warn("Could not resume Garmin session, falling back to credential login",
			slog.String("token_store", srv.store.Location()),
			slog.Any("error", err),
		)
	}

	if !creds.Complete() {
		logger.Error("No Garmin credentials available for login")

		return false
	}

	client, err := srv.factory.Login(ctx, creds)
	if err != nil {
		logger.Error("Garmin login failed", slog.Any("error", err))

		return false
	}

	if err := client.Dump(ctx, srv.store); err != nil {
		logger.Warn("Failed to persist Garmin tokens",
			slog.String("token_store", srv.store.Location()),
			slog.Any("error", err),
		)
	}

	logger.Info("Logged in to Garmin Connect")
	srv.client = client

	return true
}

// DisplayName returns the authenticated account's full name.
func (srv *sessionService) DisplayName(ctx context.Context) (string, bool) {
	client, ok := srv.Client()
	if !ok {
		return "", false
	}

	name, err := client.FullName(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to get Garmin display name", slog.Any("error", err))

		return "", false
	}

	return name, true
}

func (srv *sessionService) Client() (service.ConnectClient, bool) {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.client, srv.client != nil
}
