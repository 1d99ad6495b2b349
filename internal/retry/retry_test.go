package retry_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voycli/voycli/internal/retry"
	"github.com/voycli/voycli/pkg/voyager"
)

var errBoom = errors.New("boom")

func fastConfig(maxRetries int) retry.Config {
	return retry.Config{
		MaxRetries:   maxRetries,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2,
	}
}

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	t.Parallel()

	attempts := 0

	result, err := retry.Do(context.Background(), fastConfig(3), func(ctx context.Context) (string, error) {
		attempts++

		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 1, attempts)
}

func TestDo_RetriesRateLimitWithRetryAfter(t *testing.T) {
	t.Parallel()

	attempts := 0
	start := time.Now()

	result, err := retry.Do(context.Background(), fastConfig(3), func(ctx context.Context) (string, error) {
		attempts++
		if attempts == 1 {
			return "", &voyager.RateLimitError{RetryAfter: 20 * time.Millisecond}
		}

		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 2, attempts)
	// The explicit retry-after overrides the 1ms schedule.
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestDo_NonRetryableFailsImmediately(t *testing.T) {
	t.Parallel()

	attempts := 0

	_, err := retry.Do(context.Background(), fastConfig(3), func(ctx context.Context) (string, error) {
		attempts++

		return "", &voyager.NotFoundError{Resource: "Profile"}
	})

	require.Error(t, err)
	assert.True(t, voyager.IsNotFound(err))
	assert.Equal(t, 1, attempts)
}

func TestDo_ExhaustsRetriesAndReturnsLastError(t *testing.T) {
	t.Parallel()

	attempts := 0

	_, err := retry.Do(context.Background(), fastConfig(2), func(ctx context.Context) (string, error) {
		attempts++

		return "", &voyager.APIError{StatusCode: 503, Endpoint: "/voyager/api/me", Message: "unavailable"}
	})

	require.Error(t, err)
	assert.Equal(t, 3, attempts)

	var apiErr *voyager.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 503, apiErr.StatusCode)
}

func TestDo_PlainErrorNotRetried(t *testing.T) {
	t.Parallel()

	attempts := 0

	_, err := retry.Do(context.Background(), fastConfig(3), func(ctx context.Context) (int, error) {
		attempts++

		return 0, errBoom
	})

	require.ErrorIs(t, err, errBoom)
	assert.Equal(t, 1, attempts)
}

func TestDo_CancelledContextStopsWaiting(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	cfg := retry.Config{
		MaxRetries:   3,
		InitialDelay: time.Hour,
		MaxDelay:     time.Hour,
		Multiplier:   2,
	}

	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	_, err := retry.Do(ctx, cfg, func(ctx context.Context) (string, error) {
		attempts++

		return "", &voyager.APIError{StatusCode: 500}
	})

	require.Error(t, err)
	assert.Equal(t, 1, attempts)

	var apiErr *voyager.APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestDo_DeadlineExceededIsRetried(t *testing.T) {
	t.Parallel()

	attempts := 0

	result, err := retry.Do(context.Background(), fastConfig(3), func(ctx context.Context) (string, error) {
		attempts++
		if attempts < 3 {
			return "", context.DeadlineExceeded
		}

		return "recovered", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "recovered", result)
	assert.Equal(t, 3, attempts)
}
