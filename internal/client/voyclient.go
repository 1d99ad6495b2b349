// Package client is the orchestrator: one method per capability, each
// building an endpoint URL, running the retry-wrapped executor, and handing
// the envelope to the matching normalizer.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/voycli/voycli/internal/auth"
	"github.com/voycli/voycli/internal/browser"
	"github.com/voycli/voycli/internal/httpx"
	"github.com/voycli/voycli/internal/retry"
	"github.com/voycli/voycli/pkg/voyager"
)

// DefaultTimeout bounds one HTTP round trip when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Options configures client construction. Credential fields feed the
// resolver; everything else tunes the executor.
type Options struct {
	// Cookies is an explicit session pair; it short-circuits resolution.
	Cookies voyager.CookieSet
	// Account names a configured account for credential resolution.
	Account string
	// CookieSource requests a specific browser for cookie extraction.
	CookieSource string
	// BaseURL overrides the upstream base, mainly for tests.
	BaseURL string
	Timeout time.Duration
	// Delay is the inter-request pacing delay; zero disables pacing.
	Delay      time.Duration
	Retry      retry.Config
	Logger     zerolog.Logger
	HTTPClient *http.Client
	// Resolver overrides the default credential resolver, for tests.
	Resolver *auth.Resolver
}

// Client is safe for reuse across calls; the resolved session and derived
// headers are read-only after construction.
type Client struct {
	http    *httpx.Client
	retry   retry.Config
	cookies voyager.CookieSet
}

// New resolves credentials and builds a ready client. Resolution happens
// exactly once here; a client never re-authenticates.
func New(opts Options) (*Client, error) {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = auth.NewResolver(browser.Extract)
	}

	cookies, err := resolver.Resolve(auth.Options{
		Cookies: opts.Cookies,
		Account: opts.Account,
		Source:  opts.CookieSource,
	})
	if err != nil {
		return nil, fmt.Errorf("resolving credentials: %w", err)
	}

	baseURL := opts.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	headers := auth.Headers(cookies, uuid.NewString())

	httpOpts := []httpx.Option{
		httpx.WithTimeout(timeout),
		httpx.WithRequestDelay(opts.Delay),
		httpx.WithLogger(opts.Logger),
	}
	if opts.HTTPClient != nil {
		httpOpts = append(httpOpts, httpx.WithHTTPClient(opts.HTTPClient))
	}

	return &Client{
		http:    httpx.NewClient(baseURL, headers, httpOpts...),
		retry:   opts.Retry,
		cookies: cookies,
	}, nil
}

// Cookies returns the session resolved at construction.
func (c *Client) Cookies() voyager.CookieSet {
	return c.cookies
}

// getEnvelope is the shared read path: retry-wrapped GET decoded as a raw
// envelope.
func (c *Client) getEnvelope(ctx context.Context, path string, query url.Values) (*voyager.RawEnvelope, error) {
	return retry.Do(ctx, c.retry, func(ctx context.Context) (*voyager.RawEnvelope, error) {
		return c.http.GetEnvelope(ctx, path, query)
	})
}

// post is the shared mutation path: retry-wrapped POST with optional query
// parameters.
func (c *Client) post(ctx context.Context, path string, query url.Values, body any) (*httpx.Response, error) {
	return retry.Do(ctx, c.retry, func(ctx context.Context) (*httpx.Response, error) {
		return c.http.PostQuery(ctx, path, query, body)
	})
}

// createdURN lightly projects a mutation response: the URN of the created
// entity when the upstream reports one, otherwise empty. Mutations never run
// full normalization.
func createdURN(body []byte) voyager.URN {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}

	candidates := []map[string]any{payload}
	if value, ok := payload["value"].(map[string]any); ok {
		candidates = append(candidates, value)
	}

	for _, candidate := range candidates {
		for _, key := range []string{"urn", "entityUrn", "backendUrn"} {
			if urn, ok := candidate[key].(string); ok && urn != "" {
				return voyager.URN(urn)
			}
		}
	}

	return ""
}

// pageQuery renders pagination options as upstream query parameters.
func pageQuery(opts voyager.PageOptions) url.Values {
	start, count := voyager.BuildPaginationParams(opts)

	query := url.Values{}
	query.Set("start", fmt.Sprintf("%d", start))
	query.Set("count", fmt.Sprintf("%d", count))

	return query
}
