// Package retrier defines a small retry port so callers stay independent of
// the concrete backoff implementation.
package retrier

import (
	"context"
	"time"
)

// Retrier runs fn until it succeeds, the policy gives up, or ctx is done.
type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

// ShouldRetryFunc classifies an error as transient.
type ShouldRetryFunc func(error) bool

type Config struct {
	InitialInterval time.Duration
	MaxInterval     time.Duration
	MaxElapsedTime  time.Duration
	Randomization   float64
	Multiplier      float64

	// ShouldRetry nil means every error is retried.
	ShouldRetry ShouldRetryFunc
}
