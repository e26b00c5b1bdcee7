package service

import "time"

// APITokenService issues and checks the bearer tokens guarding the HTTP API.
type APITokenService interface {
	// Enabled reports whether a signing secret is configured.
	Enabled() bool
	GenerateToken(subject string, ttl time.Duration) (string, error)
	// ValidateToken returns the token subject.
	ValidateToken(tokenString string) (string, error)
}
