// Package retry wraps a fallible operation with classification-aware
// exponential backoff. Classification is delegated to voyager.Retryable so
// the policy never re-inspects response bodies; by the time an error reaches
// this layer it already carries its kind.
package retry

import (
	"context"
	"errors"
	"time"

	"github.com/voycli/voycli/pkg/voyager"
)

// Defaults applied by Config.withDefaults for zero-valued fields.
const (
	DefaultMaxRetries   = 3
	DefaultInitialDelay = 1 * time.Second
	DefaultMaxDelay     = 60 * time.Second
	DefaultMultiplier   = 2
)

// Config tunes the backoff schedule. The zero value selects the defaults.
type Config struct {
	MaxRetries   int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   int
}

func (c Config) withDefaults() Config {
	if c.MaxRetries <= 0 {
		c.MaxRetries = DefaultMaxRetries
	}

	if c.InitialDelay <= 0 {
		c.InitialDelay = DefaultInitialDelay
	}

	if c.MaxDelay <= 0 {
		c.MaxDelay = DefaultMaxDelay
	}

	if c.Multiplier <= 0 {
		c.Multiplier = DefaultMultiplier
	}

	return c
}

// Operation is one attempt of a logical call.
type Operation[T any] func(ctx context.Context) (T, error)

// Do runs op up to MaxRetries+1 times. Non-retryable errors propagate
// immediately. A rate-limit error carrying an explicit wait overrides the
// computed backoff for that round; otherwise the delay doubles (bounded by
// MaxDelay) after each failure. The wait is a blocking, context-aware sleep;
// no jitter is applied here — pacing jitter belongs to the inter-request
// delay, not the retry schedule. On exhaustion the last error is returned
// unchanged.
func Do[T any](ctx context.Context, cfg Config, op Operation[T]) (T, error) {
	cfg = cfg.withDefaults()

	var (
		result  T
		lastErr error
	)

	delay := cfg.InitialDelay

	for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
		result, lastErr = op(ctx)
		if lastErr == nil {
			return result, nil
		}

		if !voyager.Retryable(lastErr) {
			return result, lastErr
		}

		if attempt == cfg.MaxRetries {
			break
		}

		wait := delay
		if wait > cfg.MaxDelay {
			wait = cfg.MaxDelay
		}

		// An explicit retry-after from the upstream wins over the schedule.
		var rateLimit *voyager.RateLimitError
		if errors.As(lastErr, &rateLimit) && rateLimit.RetryAfter > 0 {
			wait = rateLimit.RetryAfter
		}

		if err := sleep(ctx, wait); err != nil {
			return result, lastErr
		}

		delay *= time.Duration(cfg.Multiplier)
	}

	return result, lastErr
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
