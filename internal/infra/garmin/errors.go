package garmin

import (
	"fmt"

	"coach/internal/errors"
)

var (
	ErrInvalidCredentials = errors.New("garmin sso rejected the credentials")
	ErrMFARequired        = errors.New("garmin sso requires multi-factor authentication")
	ErrTokenExpired       = errors.New("stored garmin token is expired or empty")
	ErrUnexpectedSSO      = errors.New("unexpected garmin sso response")
)

// StatusError is returned for non-success upstream responses.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Body)
}
