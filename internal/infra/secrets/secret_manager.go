package secrets

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"coach/config"
	"coach/internal/domain/service"
	"coach/internal/errors"

	secretmanager "cloud.google.com/go/secretmanager/apiv1"
	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

// secretAccessor is the subset of the Secret Manager client we call.
type secretAccessor interface {
	AccessSecretVersion(ctx context.Context, req *secretmanagerpb.AccessSecretVersionRequest, opts ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error)
	Close() error
}

// secretManagerStore implements SecretStore on GCP Secret Manager. The client
// is dialed on first use so local runs without credentials never touch GCP.
type secretManagerStore struct {
	opts   []option.ClientOption
	dial   func(ctx context.Context, opts ...option.ClientOption) (secretAccessor, error)
	logger *slog.Logger

	mu     sync.Mutex
	client secretAccessor
}

// StoreParams holds dependencies for the secret store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewSecretManagerStore creates the Secret Manager backed store
func NewSecretManagerStore(params StoreParams) service.SecretStore {
	var opts []option.ClientOption
	if path := params.Config.Secrets.CredentialsPath; path != "" {
		opts = append(opts, option.WithCredentialsFile(path))
	}

	store := &secretManagerStore{
		opts:   opts,
		dial:   dialSecretManager,
		logger: params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store
}

var _ secretAccessor = (*secretmanager.Client)(nil)

func dialSecretManager(ctx context.Context, opts ...option.ClientOption) (secretAccessor, error) {
	client, err := secretmanager.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return client, nil
}

func (s *secretManagerStore) AccessSecret(ctx context.Context, projectID, secretID string) (string, error) {
	client, err := s.getClient(ctx)
	if err != nil {
		return "", err
	}

	name := fmt.Sprintf("projects/%s/secrets/%s/versions/latest", projectID, secretID)
	resp, err := client.AccessSecretVersion(ctx, &secretmanagerpb.AccessSecretVersionRequest{Name: name})
	if err != nil {
		return "", errors.Wrapf(err, "access secret %s", secretID)
	}

	return string(resp.GetPayload().GetData()), nil
}

func (s *secretManagerStore) getClient(ctx context.Context) (secretAccessor, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client != nil {
		return s.client, nil
	}

	client, err := s.dial(ctx, s.opts...)
	if err != nil {
		return nil, errors.Wrap(err, "create secret manager client")
	}
	s.logger.Debug("Secret Manager client initialized")
	s.client = client

	return client, nil
}

// Close releases the Secret Manager client, if one was dialed
func (s *secretManagerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Close()
	s.client = nil

	return errors.WithStack(err)
}
