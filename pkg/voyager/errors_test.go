package voyager_test

import (
	"context"
	"errors"
	"fmt"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voycli/voycli/pkg/voyager"
)

var errPlain = errors.New("plain error")

func TestRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "rate limit", err: &voyager.RateLimitError{RetryAfter: time.Minute}, want: true},
		{name: "server error 500", err: &voyager.APIError{StatusCode: 500}, want: true},
		{name: "server error 503", err: &voyager.APIError{StatusCode: 503}, want: true},
		{name: "client error 400", err: &voyager.APIError{StatusCode: 400}, want: false},
		{name: "not found", err: &voyager.NotFoundError{Resource: "Profile"}, want: false},
		{name: "authentication", err: &voyager.AuthenticationError{Message: "expired"}, want: false},
		{name: "challenge", err: &voyager.ChallengeError{}, want: false},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: true},
		{name: "wrapped deadline", err: fmt.Errorf("request: %w", context.DeadlineExceeded), want: true},
		{name: "connection reset", err: syscall.ECONNRESET, want: true},
		{name: "connection refused", err: syscall.ECONNREFUSED, want: true},
		{name: "plain error", err: errPlain, want: false},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, voyager.Retryable(testCase.err))
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("getting profile: %w", &voyager.NotFoundError{Resource: "Profile"})
	assert.True(t, voyager.IsNotFound(notFound))
	assert.False(t, voyager.IsAuthentication(notFound))

	auth := fmt.Errorf("resolving: %w", &voyager.AuthenticationError{Message: "no cookies"})
	assert.True(t, voyager.IsAuthentication(auth))
	assert.False(t, voyager.IsRateLimit(auth))

	assert.True(t, voyager.IsChallenge(&voyager.ChallengeError{}))
	assert.True(t, voyager.IsRateLimit(&voyager.RateLimitError{RetryAfter: time.Second}))
}

func TestCookieExtractionError_Unwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("cookies.sqlite is locked")
	err := &voyager.CookieExtractionError{Source: "firefox", Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "firefox")
	assert.Contains(t, err.Error(), "cookies.sqlite is locked")
}

func TestAPIError_Error(t *testing.T) {
	t.Parallel()

	err := &voyager.APIError{StatusCode: 502, Endpoint: "/voyager/api/me", Message: "bad gateway"}
	assert.Equal(t, "bad gateway (status 502, endpoint /voyager/api/me)", err.Error())
}
