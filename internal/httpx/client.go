// Package httpx issues single HTTP round trips against the upstream API and
// maps transport and status outcomes onto the typed error taxonomy in
// pkg/voyager. Retry policy does not live here; it is layered around this
// client by internal/retry.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/voycli/voycli/pkg/voyager"
)

// DefaultRateLimitWait applies when a 429 arrives without a Retry-After
// header.
const DefaultRateLimitWait = 60 * time.Second

// Markers in a 403 body that indicate the upstream wants interactive
// verification rather than signalling bad credentials.
var challengeMarkers = []string{"challenge", "captcha", "verification"}

// Client issues one HTTP call per Do invocation. It is safe for reuse
// across calls; the header set is read-only after construction.
type Client struct {
	baseURL    string
	headers    map[string]string
	httpClient *http.Client
	timeout    time.Duration
	delay      time.Duration
	logger     zerolog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout. An aborted call surfaces as a
// retryable transport failure.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRequestDelay sets the inter-request pacing delay. Each call sleeps
// delay + random(0, delay) before hitting the network, spacing sequential
// calls to avoid upstream throttling. This is separate from retry backoff.
func WithRequestDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.delay = delay
	}
}

// WithLogger sets the structured logger used for debug request/response
// logging.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient replaces the underlying transport, mainly for tests.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a client rooted at baseURL. headers is the full header
// set applied to every request (see internal/auth.Headers).
func NewClient(baseURL string, headers map[string]string, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		headers:    headers,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Request describes one call.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    any
	Headers map[string]string
}

// Response is a decoded 2xx outcome. JSON reports whether the content type
// indicated a JSON body; Body holds the raw bytes either way.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
	JSON       bool
}

// Decode unmarshals a JSON response body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// Do performs one network round trip plus status classification.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := c.pace(ctx); err != nil {
		return nil, err
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	started := time.Now()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	c.logger.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int("status", httpResp.StatusCode).
		Dur("duration", time.Since(started)).
		Int("bytes", len(body)).
		Msg("request completed")

	if err := classifyStatus(httpResp, body, req.Path); err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
		JSON:       isJSON(httpResp.Header.Get("Content-Type")),
	}, nil
}

// pace applies the inter-request delay with jitter. It never delays when no
// delay is configured.
func (c *Client) pace(ctx context.Context) error {
	if c.delay <= 0 {
		return nil
	}

	wait := c.delay + time.Duration(rand.Int64N(int64(c.delay)))

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (c *Client) buildRequest(ctx context.Context, req *Request) (*http.Request, error) {
	target := req.Path
	if !strings.HasPrefix(target, "http://") && !strings.HasPrefix(target, "https://") {
		target = c.baseURL + req.Path
	}

	if len(req.Query) > 0 {
		separator := "?"
		if strings.Contains(target, "?") {
			separator = "&"
		}

		target += separator + req.Query.Encode()
	}

	var bodyReader io.Reader

	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}

		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	return httpReq, nil
}

// classifyStatus maps a non-2xx status onto the typed taxonomy, checked in
// a fixed order: 401, 403 (challenge marker splits challenge from plain
// forbidden), 404, 429, then the generic upstream error.
func classifyStatus(resp *http.Response, body []byte, endpoint string) error {
	status := resp.StatusCode
	if status >= 200 && status < 300 {
		return nil
	}

	switch status {
	case http.StatusUnauthorized:
		return &voyager.AuthenticationError{
			Message:    "session is invalid or expired",
			StatusCode: status,
			Endpoint:   endpoint,
		}
	case http.StatusForbidden:
		if hasChallengeMarker(body) {
			return &voyager.ChallengeError{
				Message:    "verification challenge required; complete it in a browser and retry",
				StatusCode: status,
				Endpoint:   endpoint,
			}
		}

		return &voyager.AuthenticationError{
			Message:    "access forbidden",
			StatusCode: status,
			Endpoint:   endpoint,
		}
	case http.StatusNotFound:
		return &voyager.NotFoundError{Resource: "Resource", Endpoint: endpoint}
	case http.StatusTooManyRequests:
		return &voyager.RateLimitError{
			RetryAfter: retryAfter(resp.Header),
			Endpoint:   endpoint,
		}
	default:
		return &voyager.APIError{
			StatusCode: status,
			Endpoint:   endpoint,
			Message:    "request failed",
		}
	}
}

func hasChallengeMarker(body []byte) bool {
	text := strings.ToLower(string(body))

	for _, marker := range challengeMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}

	return false
}

func retryAfter(headers http.Header) time.Duration {
	value := headers.Get("Retry-After")
	if value == "" {
		return DefaultRateLimitWait
	}

	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return DefaultRateLimitWait
	}

	return time.Duration(seconds) * time.Second
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json") ||
		strings.HasSuffix(mediaType, "+json+2.1")
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostQuery issues a POST request with both query parameters and a JSON body.
func (c *Client) PostQuery(ctx context.Context, path string, query url.Values, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Query: query, Body: body})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// GetEnvelope issues a GET and decodes the body as a raw envelope.
func (c *Client) GetEnvelope(ctx context.Context, path string, query url.Values) (*voyager.RawEnvelope, error) {
	resp, err := c.Get(ctx, path, query)
	if err != nil {
		return nil, err
	}

	var envelope voyager.RawEnvelope
	if err := resp.Decode(&envelope); err != nil {
		return nil, err
	}

	return &envelope, nil
}
