package auth

import (
	"testing"
	"time"

	"coach/config"
	"coach/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(secret string) *jwtService {
	return NewJWTService(&config.Config{Auth: &config.AuthConfig{JWTSecret: secret}}).(*jwtService)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestService("test_secret_key_very_long_for_testing")
	require.True(t, svc.Enabled())

	token, err := svc.GenerateToken("coach-llm", time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	subject, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "coach-llm", subject)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestService("test_secret_key_very_long_for_testing")
	issued := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	token, err := svc.GenerateToken("coach-llm", time.Minute)
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = svc.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_WrongSecret(t *testing.T) {
	token, err := newTestService("secret-one").GenerateToken("coach-llm", time.Hour)
	require.NoError(t, err)

	_, err = newTestService("secret-two").ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_RejectsOtherSigningMethods(t *testing.T) {
	svc := newTestService("test_secret")
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Issuer:  issuer,
		Subject: "intruder",
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = svc.ValidateToken(unsigned)
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_Malformed(t *testing.T) {
	_, err := newTestService("test_secret").ValidateToken("clearly-not-a-jwt-token-format")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}

func TestJWTService_Disabled(t *testing.T) {
	svc := NewJWTService(&config.Config{})
	assert.False(t, svc.Enabled())

	_, err := svc.GenerateToken("x", time.Hour)
	assert.True(t, errors.Is(err, ErrAuthDisabled))

	_, err = svc.ValidateToken("anything")
	assert.True(t, errors.Is(err, ErrAuthDisabled))
}
