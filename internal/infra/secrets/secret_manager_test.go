package secrets

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"coach/internal/errors"

	"cloud.google.com/go/secretmanager/apiv1/secretmanagerpb"
	"github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/option"
)

type fakeAccessor struct {
	names  []string
	values map[string]string
	err    error
	closed bool
}

func (f *fakeAccessor) AccessSecretVersion(_ context.Context, req *secretmanagerpb.AccessSecretVersionRequest, _ ...gax.CallOption) (*secretmanagerpb.AccessSecretVersionResponse, error) {
	f.names = append(f.names, req.GetName())
	if f.err != nil {
		return nil, f.err
	}

	return &secretmanagerpb.AccessSecretVersionResponse{
		Name:    req.GetName(),
		Payload: &secretmanagerpb.SecretPayload{Data: []byte(f.values[req.GetName()])},
	}, nil
}

func (f *fakeAccessor) Close() error {
	f.closed = true

	return nil
}

func newTestStore(accessor *fakeAccessor, dialErr error) (*secretManagerStore, *int) {
	dials := 0
	store := &secretManagerStore{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		dial: func(context.Context, ...option.ClientOption) (secretAccessor, error) {
			dials++
			if dialErr != nil {
				return nil, dialErr
			}

			return accessor, nil
		},
	}

	return store, &dials
}

func TestSecretManagerStore_AccessSecret(t *testing.T) {
	accessor := &fakeAccessor{values: map[string]string{
		"projects/coach-prod/secrets/garmin-email/versions/latest": "runner@example.com",
	}}
	store, dials := newTestStore(accessor, nil)

	value, err := store.AccessSecret(context.Background(), "coach-prod", "garmin-email")
	require.NoError(t, err)
	assert.Equal(t, "runner@example.com", value)

	_, err = store.AccessSecret(context.Background(), "coach-prod", "garmin-password")
	require.NoError(t, err)

	assert.Equal(t, 1, *dials, "client is dialed once and reused")
	assert.Equal(t, []string{
		"projects/coach-prod/secrets/garmin-email/versions/latest",
		"projects/coach-prod/secrets/garmin-password/versions/latest",
	}, accessor.names)

	require.NoError(t, store.Close())
	assert.True(t, accessor.closed)
}

func TestSecretManagerStore_DialFailure(t *testing.T) {
	store, _ := newTestStore(nil, errors.New("could not find default credentials"))

	_, err := store.AccessSecret(context.Background(), "coach-prod", "garmin-email")

	assert.ErrorContains(t, err, "create secret manager client")
	assert.NoError(t, store.Close())
}

func TestSecretManagerStore_AccessFailure(t *testing.T) {
	store, _ := newTestStore(&fakeAccessor{err: errors.New("permission denied")}, nil)

	_, err := store.AccessSecret(context.Background(), "coach-prod", "garmin-email")

	assert.ErrorContains(t, err, "access secret garmin-email")
}
