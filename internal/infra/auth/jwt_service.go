// Package auth signs and verifies the HS256 bearer tokens of the HTTP API.
package auth

import (
	"time"

	"coach/config"
	"coach/internal/domain/service"
	"coach/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuer     = "garmin-coach"
	defaultTTL = 24 * time.Hour
)

var (
	ErrAuthDisabled = errors.New("api auth is disabled: no jwt secret configured")
	ErrInvalidToken = errors.New("invalid or expired token")
)

// jwtService is a concrete implementation of the APITokenService interface.
type jwtService struct {
	secret []byte
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService. An empty auth.jwtSecret
// yields a disabled service.
func NewJWTService(cfg *config.Config) service.APITokenService {
	var secret []byte
	if cfg.Auth != nil {
		secret = []byte(cfg.Auth.JWTSecret)
	}

	return &jwtService{secret: secret, now: time.Now}
}

func (s *jwtService) Enabled() bool {
	return len(s.secret) > 0
}

// GenerateToken creates a token for subject. A non-positive ttl uses one day.
func (s *jwtService) GenerateToken(subject string, ttl time.Duration) (string, error) {
	if !s.Enabled() {
		return "", errors.WithStack(ErrAuthDisabled)
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}

	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return signed, nil
}

func (s *jwtService) ValidateToken(tokenString string) (string, error) {
	if !s.Enabled() {
		return "", errors.WithStack(ErrAuthDisabled)
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return "", errors.Wrap(ErrInvalidToken, errorText(err))
	}

	return claims.Subject, nil
}

func errorText(err error) string {
	if err == nil {
		return "token not valid"
	}

	return err.Error()
}
