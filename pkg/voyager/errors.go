package voyager

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"time"
)

// APIError is the generic upstream API error: any non-2xx status that does
// not map to a more specific kind. It also serves as the base shape for the
// rest of the taxonomy (optional status code plus endpoint).
type APIError struct {
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Endpoint   string `json:"endpoint"    yaml:"endpoint"`
	Message    string `json:"message"     yaml:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "request failed"
	}

	if e.StatusCode != 0 && e.Endpoint != "" {
		return fmt.Sprintf("%s (status %d, endpoint %s)", msg, e.StatusCode, e.Endpoint)
	}

	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d)", msg, e.StatusCode)
	}

	return msg
}

// AuthenticationError indicates an invalid or expired session: status 401,
// 403 without a challenge marker, or credential resolution failure.
type AuthenticationError struct {
	Message    string `json:"message"     yaml:"message"`
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Endpoint   string `json:"endpoint"    yaml:"endpoint"`
}

func (e *AuthenticationError) Error() string {
	if e.Message == "" {
		return "authentication failed"
	}

	return "authentication failed: " + e.Message
}

// ChallengeError indicates the upstream demands interactive verification
// (status 403 with a challenge/CAPTCHA marker in the body). It is never
// retried; resolving it requires a human in a browser.
type ChallengeError struct {
	Message    string `json:"message"     yaml:"message"`
	StatusCode int    `json:"status_code" yaml:"status_code"`
	Endpoint   string `json:"endpoint"    yaml:"endpoint"`
}

func (e *ChallengeError) Error() string {
	if e.Message == "" {
		return "verification challenge required; complete it in a browser and retry"
	}

	return e.Message
}

// RateLimitError indicates status 429. RetryAfter carries the wait the
// upstream asked for (default 60s when the header is absent); the retry
// layer uses it as the next backoff delay.
type RateLimitError struct {
	RetryAfter time.Duration `json:"retry_after" yaml:"retry_after"`
	Endpoint   string        `json:"endpoint"    yaml:"endpoint"`
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited, retry after %s", e.RetryAfter)
}

// NotFoundError indicates status 404, or a singular-entity parse that
// yielded zero matches. Resource names what was looked up.
type NotFoundError struct {
	Resource string `json:"resource" yaml:"resource"`
	Endpoint string `json:"endpoint" yaml:"endpoint"`
}

func (e *NotFoundError) Error() string {
	resource := e.Resource
	if resource == "" {
		resource = "resource"
	}

	return resource + " not found"
}

// CookieExtractionError indicates that browser cookie-store extraction failed
// for a given source. It surfaces as the message of a wrapping
// AuthenticationError once it reaches credential resolution.
type CookieExtractionError struct {
	Source string `json:"source" yaml:"source"`
	Cause  error  `json:"-"      yaml:"-"`
}

func (e *CookieExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extracting cookies from %s: %v", e.Source, e.Cause)
	}

	return fmt.Sprintf("no session cookies found in %s", e.Source)
}

func (e *CookieExtractionError) Unwrap() error {
	return e.Cause
}

// IsAuthentication checks if the error is an authentication error.
func IsAuthentication(err error) bool {
	var target *AuthenticationError

	return errors.As(err, &target)
}

// IsChallenge checks if the error is a verification challenge.
func IsChallenge(err error) bool {
	var target *ChallengeError

	return errors.As(err, &target)
}

// IsRateLimit checks if the error is a rate-limit error.
func IsRateLimit(err error) bool {
	var target *RateLimitError

	return errors.As(err, &target)
}

// IsNotFound checks if the error is a not-found error.
func IsNotFound(err error) bool {
	var target *NotFoundError

	return errors.As(err, &target)
}

// Retryable reports whether an operation that failed with err is worth
// retrying. It is a pure function over the error kind: rate limits, server
// errors in [500,600), and recognized transient network failures retry;
// everything else propagates immediately.
func Retryable(err error) bool {
	if err == nil {
		return false
	}

	var rateLimit *RateLimitError
	if errors.As(err, &rateLimit) {
		return true
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500 && apiErr.StatusCode < 600
	}

	return transient(err)
}

// transient recognizes network-level failures that tend to clear on their
// own: timeouts (including an aborted per-request deadline), connection
// resets, and refused connections.
func transient(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.EPIPE)
}
