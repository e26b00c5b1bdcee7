package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"coach/internal/domain/entity"
	"coach/internal/errors"
	mockService "coach/internal/mocks/service"
	mockUsecase "coach/internal/mocks/usecase"
	"coach/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service     usecase.SessionUsecase
	factory     *mockService.MockConnectClientFactory
	store       *mockService.MockTokenStore
	credentials *mockUsecase.MockCredentialUsecase
}

func createTestSessionService(t *testing.T) sessionServiceFixtures {
	factory := mockService.NewMockConnectClientFactory(t)
	store := mockService.NewMockTokenStore(t)
	credentials := mockUsecase.NewMockCredentialUsecase(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store.EXPECT().Location().Return("/tmp/.garminconnect").Maybe()

	return sessionServiceFixtures{
		service:     NewSessionService(factory, store, credentials, logger),
		factory:     factory,
		store:       store,
		credentials: credentials,
	}
}

func TestSessionService_Login_ResumeWithoutCredentials(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	client := mockService.NewMockConnectClient(t)

	fx.credentials.EXPECT().GarminCredentials(ctx).Return(entity.Credentials{})
	fx.store.EXPECT().Exists(ctx).Return(true)
	fx.factory.EXPECT().Resume(ctx, fx.store).Return(client, nil)

	ok := fx.service.Login(ctx, "", "")

	require.True(t, ok)
	handle, set := fx.service.Client()
	assert.True(t, set)
	assert.Same(t, client, handle)
}

func TestSessionService_Login_ResumeFailureFallsBackToCredentials(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	client := mockService.NewMockConnectClient(t)

	fx.credentials.EXPECT().
		GarminCredentials(ctx).
		Return(entity.Credentials{Email: "resolved@example.com", Password: "resolved-pw"})
	fx.store.EXPECT().Exists(ctx).Return(true)
	fx.factory.EXPECT().Resume(ctx, fx.store).Return(nil, errors.New("token expired"))
	fx.factory.EXPECT().
		Login(ctx, entity.Credentials{Email: "arg@example.com", Password: "resolved-pw"}).
		Return(client, nil)
	client.EXPECT().Dump(ctx, fx.store).Return(nil)

	ok := fx.service.Login(ctx, "arg@example.com", "")

	require.True(t, ok)
	handle, set := fx.service.Client()
	assert.True(t, set)
	assert.Same(t, client, handle)
}

func TestSessionService_Login_ExplicitCredentialsSkipResolver(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	client := mockService.NewMockConnectClient(t)
	creds := entity.Credentials{Email: "arg@example.com", Password: "arg-pw"}

	fx.store.EXPECT().Exists(ctx).Return(false)
	fx.factory.EXPECT().Login(ctx, creds).Return(client, nil)
	client.EXPECT().Dump(ctx, fx.store).Return(nil)

	assert.True(t, fx.service.Login(ctx, creds.Email, creds.Password))
}

func TestSessionService_Login_DumpFailureStillSucceeds(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	client := mockService.NewMockConnectClient(t)

	fx.store.EXPECT().Exists(ctx).Return(false)
	fx.factory.EXPECT().Login(ctx, mock.AnythingOfType("entity.Credentials")).Return(client, nil)
	client.EXPECT().Dump(ctx, fx.store).Return(errors.New("read-only file system"))

	ok := fx.service.Login(ctx, "a@example.com", "pw")

	assert.True(t, ok)
	_, set := fx.service.Client()
	assert.True(t, set)
}

func TestSessionService_Login_NoCredentialsClearsHandle(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	client := mockService.NewMockConnectClient(t)

	// First login succeeds by resuming.
	fx.credentials.EXPECT().GarminCredentials(ctx).Return(entity.Credentials{})
	fx.store.EXPECT().Exists(ctx).Return(true).Once()
	fx.factory.EXPECT().Resume(ctx, fx.store).Return(client, nil).Once()
	require.True(t, fx.service.Login(ctx, "", ""))

	// Second login has neither a token store nor credentials.
	fx.store.EXPECT().Exists(ctx).Return(false).Once()

	ok := fx.service.Login(ctx, "", "")

	assert.False(t, ok)
	_, set := fx.service.Client()
	assert.False(t, set)
}

func TestSessionService_Login_FreshLoginError(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.store.EXPECT().Exists(ctx).Return(false)
	fx.factory.EXPECT().Login(ctx, mock.Anything).Return(nil, errors.New("invalid credentials"))

	ok := fx.service.Login(ctx, "a@example.com", "wrong")

	assert.False(t, ok)
	_, set := fx.service.Client()
	assert.False(t, set)
}

func TestSessionService_DisplayName(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		fx := createTestSessionService(t)

		name, ok := fx.service.DisplayName(context.Background())

		assert.False(t, ok)
		assert.Empty(t, name)
	})

	t.Run("upstream error", func(t *testing.T) {
		fx := createTestSessionService(t)
		ctx := context.Background()
		client := mockService.NewMockConnectClient(t)

		fx.store.EXPECT().Exists(ctx).Return(false)
		fx.factory.EXPECT().Login(ctx, mock.Anything).Return(client, nil)
		client.EXPECT().Dump(ctx, fx.store).Return(nil)
		client.EXPECT().FullName(ctx).Return("", errors.New("timeout"))
		require.True(t, fx.service.Login(ctx, "a@example.com", "pw"))

		name, ok := fx.service.DisplayName(ctx)

		assert.False(t, ok)
		assert.Empty(t, name)
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestSessionService(t)
		ctx := context.Background()
		client := mockService.NewMockConnectClient(t)

		fx.store.EXPECT().Exists(ctx).Return(false)
		fx.factory.EXPECT().Login(ctx, mock.Anything).Return(client, nil)
		client.EXPECT().Dump(ctx, fx.store).Return(nil)
		client.EXPECT().FullName(ctx).Return("Jamie Runner", nil)
		require.True(t, fx.service.Login(ctx, "a@example.com", "pw"))

		name, ok := fx.service.DisplayName(ctx)

		assert.True(t, ok)
		assert.Equal(t, "Jamie Runner", name)
	})
}

func TestSessionService_Login_HandleMatchesResult(t *testing.T) {
	tests := []struct {
		name       string
		storeFound bool
		resumeErr  error
		loginErr   error
		creds      entity.Credentials
	}{
		{name: "resume", storeFound: true},
		{name: "resume fails, no creds", storeFound: true, resumeErr: errors.New("corrupt")},
		{name: "fresh login", creds: entity.Credentials{Email: "a", Password: "b"}},
		{name: "fresh login fails", creds: entity.Credentials{Email: "a", Password: "b"}, loginErr: errors.New("rejected")},
		{name: "nothing available"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSessionService(t)
			ctx := context.Background()
			client := mockService.NewMockConnectClient(t)

			fx.credentials.EXPECT().GarminCredentials(ctx).Return(entity.Credentials{}).Maybe()
			fx.store.EXPECT().Exists(ctx).Return(tt.storeFound)
			if tt.storeFound {
				if tt.resumeErr != nil {
					fx.factory.EXPECT().Resume(ctx, fx.store).Return(nil, tt.resumeErr)
				} else {
					fx.factory.EXPECT().Resume(ctx, fx.store).Return(client, nil)
				}
			}
			if tt.creds.Complete() {
				if tt.loginErr != nil {
					fx.factory.EXPECT().Login(ctx, tt.creds).Return(nil, tt.loginErr)
				} else {
					fx.factory.EXPECT().Login(ctx, tt.creds).Return(client, nil)
					client.EXPECT().Dump(ctx, fx.store).Return(nil)
				}
			}

			ok := fx.service.Login(ctx, tt.creds.Email, tt.creds.Password)

			_, set := fx.service.Client()
			assert.Equal(t, ok, set)
		})
	}
}
