package garmin

import (
	"log/slog"

	"coach/config"
	"coach/internal/errors"

	"github.com/sony/gobreaker/v2"
)

// breaker guards upstream calls. A nil circuit means breaking is disabled.
type breaker struct {
	cb *gobreaker.CircuitBreaker[[]byte]
}

func newBreaker(cfg config.BreakerConfig, logger *slog.Logger) *breaker {
	if !cfg.Enabled {
		return &breaker{}
	}

	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}

	settings := gobreaker.Settings{
		Name:        "garmin-connect",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		// Client errors say nothing about upstream health.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var statusErr *StatusError

			return errors.As(err, &statusErr) && statusErr.StatusCode < 500
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				slog.String("breaker", name),
				slog.String("from", from.String()),
				slog.String("to", to.String()),
			)
		},
	}

	return &breaker{cb: gobreaker.NewCircuitBreaker[[]byte](settings)}
}

func (b *breaker) Execute(fn func() ([]byte, error)) ([]byte, error) {
	if b == nil || b.cb == nil {
		return fn()
	}

	body, err := b.cb.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, errors.Wrap(err, "garmin connect circuit open")
	}

	return body, err
}
