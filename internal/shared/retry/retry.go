// Package retry runs fallible operations with capped exponential backoff.
// A classifier decides which errors are worth another attempt; everything
// else surfaces immediately.
package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"
)

// ErrExhausted is wrapped into the error returned when every attempt failed
// with a retryable error. Callers inspect it with errors.Is to distinguish
// an exhausted budget from a non-retryable failure.
var ErrExhausted = errors.New("retry: attempts exhausted")

const (
	defaultBaseDelay = 100 * time.Millisecond
	defaultDelayCap  = 30 * time.Second

	// jitterFraction bounds the random spread added to each backoff delay.
	jitterFraction = 0.1
)

// Config controls the retry budget and backoff curve.
type Config struct {
	// MaxRetries is the number of retries after the first attempt, so an
	// operation runs at most MaxRetries+1 times. Zero disables retrying.
	MaxRetries int

	// BaseDelay is the backoff before the first retry. Each subsequent
	// retry doubles it. Defaults to 100ms.
	BaseDelay time.Duration

	// DelayCap bounds a single backoff delay, applied after jitter.
	// Defaults to 30s.
	DelayCap time.Duration

	// RetryIf classifies an error as retryable. When nil, every non-nil
	// error is retried.
	RetryIf func(error) bool

	// OnRetry is invoked after a failed attempt and before the backoff
	// sleep. attempt is 1-based and names the attempt that just failed.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// Do runs op until it succeeds, fails with a non-retryable error, the
// context ends, or the retry budget is exhausted. Non-retryable errors are
// returned unwrapped so callers keep their classification; an exhausted
// budget is reported as ErrExhausted wrapping the last attempt error.
func Do(ctx context.Context, cfg Config, op func(context.Context) error) error {
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = defaultBaseDelay
	}
	if cfg.DelayCap <= 0 {
		cfg.DelayCap = defaultDelayCap
	}
	if cfg.RetryIf == nil {
		cfg.RetryIf = func(err error) bool { return err != nil }
	}

	var lastErr error
	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("retry: context ended before attempt %d: %w", attempt+1, err)
		}

		err := op(ctx)
		if err == nil {
			return nil
		}
		lastErr = err

		if !cfg.RetryIf(err) {
			return err
		}
		if attempt == cfg.MaxRetries {
			break
		}

		delay := backoffDelay(attempt, cfg)
		if cfg.OnRetry != nil {
			cfg.OnRetry(attempt+1, delay, err)
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("retry: canceled while backing off: %w", ctx.Err())
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("%w after %d attempts: %w", ErrExhausted, cfg.MaxRetries+1, lastErr)
}

// backoffDelay computes min(BaseDelay*2^attempt + jitter, DelayCap) where
// jitter is uniform in [0, jitterFraction*exponential). The cap is applied
// last so the returned delay never exceeds it.
func backoffDelay(attempt int, cfg Config) time.Duration {
	exp := float64(cfg.BaseDelay) * math.Pow(2, float64(attempt))
	delay := exp + rand.Float64()*jitterFraction*exp

	if limit := float64(cfg.DelayCap); delay > limit || math.IsInf(delay, 1) || math.IsNaN(delay) {
		return cfg.DelayCap
	}
	return time.Duration(delay)
}
