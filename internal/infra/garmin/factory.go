package garmin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"coach/config"
	"coach/internal/domain/entity"
	"coach/internal/domain/service"
	"coach/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/oauth2"
)

const defaultTimeout = 15 * time.Second

// clientFactory builds connect clients that share one transport and breaker.
type clientFactory struct {
	cfg     config.GarminConfig
	base    *http.Client
	breaker *breaker
	logger  *slog.Logger
	now     func() time.Time
}

// FactoryParams holds dependencies for the client factory, injected by Fx
type FactoryParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClientFactory creates the Garmin Connect client factory
func NewClientFactory(params FactoryParams) service.ConnectClientFactory {
	return newClientFactory(*params.Config.Garmin, http.DefaultTransport, params.Logger)
}

func newClientFactory(cfg config.GarminConfig, transport http.RoundTripper, logger *slog.Logger) *clientFactory {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	cfg.SSOURL = strings.TrimRight(cfg.SSOURL, "/")
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	return &clientFactory{
		cfg:     cfg,
		base:    &http.Client{Timeout: cfg.Timeout, Transport: transport},
		breaker: newBreaker(cfg.Breaker, logger),
		logger:  logger,
		now:     time.Now,
	}
}

// Resume restores a session from the token file in store and verifies it
// against the profile endpoint.
func (f *clientFactory) Resume(ctx context.Context, store service.TokenStore) (service.ConnectClient, error) {
	data, err := store.ReadFile(ctx, tokenFile)
	if err != nil {
		return nil, errors.Wrap(err, "load stored garmin token")
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, errors.Wrap(err, "decode stored garmin token")
	}
	if !token.Valid() {
		return nil, errors.WithStack(ErrTokenExpired)
	}

	return f.connect(ctx, &token)
}

// Login signs in through Garmin SSO with the given credentials.
func (f *clientFactory) Login(ctx context.Context, creds entity.Credentials) (service.ConnectClient, error) {
	token, err := f.ssoLogin(ctx, creds)
	if err != nil {
		return nil, err
	}

	return f.connect(ctx, token)
}

func (f *clientFactory) connect(ctx context.Context, token *oauth2.Token) (*connectClient, error) {
	httpClient := oauth2.NewClient(
		context.WithValue(ctx, oauth2.HTTPClient, f.base),
		oauth2.StaticTokenSource(token),
	)
	httpClient.Timeout = f.cfg.Timeout

	client := &connectClient{
		http:      httpClient,
		apiURL:    f.cfg.APIURL,
		userAgent: f.cfg.UserAgent,
		token:     token,
		breaker:   f.breaker,
		logger:    f.logger,
	}

	profile, err := client.fetchProfile(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "verify garmin session")
	}
	client.displayName = profile.DisplayName

	return client, nil
}
