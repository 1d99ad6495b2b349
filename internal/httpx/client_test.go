package httpx_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voycli/voycli/internal/httpx"
	"github.com/voycli/voycli/pkg/voyager"
)

func testHeaders() map[string]string {
	return map[string]string{
		"csrf-token": "ajax:test-session",
		"cookie":     `li_at=token; JSESSIONID="ajax:test-session"`,
		"accept":     "application/vnd.linkedin.normalized+json+2.1",
	}
}

func TestClient_Do(t *testing.T) {
	t.Parallel()

	t.Run("successful request carries session headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/voyager/api/me", request.URL.Path)
			assert.Equal(t, "ajax:test-session", request.Header.Get("csrf-token"))
			assert.Equal(t, `li_at=token; JSESSIONID="ajax:test-session"`, request.Header.Get("cookie"))

			writer.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(writer).Encode(map[string]string{"status": "ok"})
		}))
		defer server.Close()

		client := httpx.NewClient(server.URL, testHeaders())

		resp, err := client.Get(context.Background(), "/voyager/api/me", nil)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
		assert.True(t, resp.JSON)

		var result map[string]string
		require.NoError(t, resp.Decode(&result))
		assert.Equal(t, "ok", result["status"])
	})

	t.Run("query parameters are encoded", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "10", request.URL.Query().Get("start"))
			assert.Equal(t, "urn:li:activity:7", request.URL.Query().Get("q"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := httpx.NewClient(server.URL, testHeaders())

		query := url.Values{"start": []string{"10"}, "q": []string{"urn:li:activity:7"}}
		resp, err := client.Get(context.Background(), "/voyager/api/feed/updates", query)
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("json body posted with content type", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, http.MethodPost, request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string
			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "hello", body["text"])

			writer.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		client := httpx.NewClient(server.URL, testHeaders())

		resp, err := client.Post(context.Background(), "/voyager/api/messages", map[string]string{"text": "hello"})
		require.NoError(t, err)
		assert.Equal(t, 201, resp.StatusCode)
	})

	t.Run("non-json success returns raw text", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("Content-Type", "text/plain")
			_, _ = writer.Write([]byte("plain response"))
		}))
		defer server.Close()

		client := httpx.NewClient(server.URL, testHeaders())

		resp, err := client.Get(context.Background(), "/", nil)
		require.NoError(t, err)
		assert.False(t, resp.JSON)
		assert.Equal(t, "plain response", string(resp.Body))
	})
}

func TestClient_StatusClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		status  int
		body    string
		headers map[string]string
		check   func(t *testing.T, err error)
	}{
		{
			name:   "401 maps to authentication error",
			status: http.StatusUnauthorized,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, voyager.IsAuthentication(err))
			},
		},
		{
			name:   "403 with challenge marker maps to challenge error",
			status: http.StatusForbidden,
			body:   `{"detail":"please solve this CAPTCHA to continue"}`,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, voyager.IsChallenge(err))
			},
		},
		{
			name:   "403 without marker maps to authentication error",
			status: http.StatusForbidden,
			body:   `{"detail":"forbidden"}`,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, voyager.IsAuthentication(err))
				assert.Contains(t, err.Error(), "access forbidden")
			},
		},
		{
			name:   "404 maps to not found",
			status: http.StatusNotFound,
			check: func(t *testing.T, err error) {
				t.Helper()
				assert.True(t, voyager.IsNotFound(err))
			},
		},
		{
			name:    "429 uses retry-after header",
			status:  http.StatusTooManyRequests,
			headers: map[string]string{"Retry-After": "120"},
			check: func(t *testing.T, err error) {
				t.Helper()

				var rateLimit *voyager.RateLimitError
				require.ErrorAs(t, err, &rateLimit)
				assert.Equal(t, 120*time.Second, rateLimit.RetryAfter)
			},
		},
		{
			name:   "429 defaults retry-after to sixty seconds",
			status: http.StatusTooManyRequests,
			check: func(t *testing.T, err error) {
				t.Helper()

				var rateLimit *voyager.RateLimitError
				require.ErrorAs(t, err, &rateLimit)
				assert.Equal(t, 60*time.Second, rateLimit.RetryAfter)
			},
		},
		{
			name:   "other statuses map to generic api error with endpoint",
			status: http.StatusBadGateway,
			check: func(t *testing.T, err error) {
				t.Helper()

				var apiErr *voyager.APIError
				require.ErrorAs(t, err, &apiErr)
				assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
				assert.Equal(t, "/voyager/api/test", apiErr.Endpoint)
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				for key, value := range testCase.headers {
					writer.Header().Set(key, value)
				}

				writer.WriteHeader(testCase.status)
				_, _ = writer.Write([]byte(testCase.body))
			}))
			defer server.Close()

			client := httpx.NewClient(server.URL, testHeaders())

			_, err := client.Get(context.Background(), "/voyager/api/test", nil)
			require.Error(t, err)
			testCase.check(t, err)
		})
	}
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		time.Sleep(200 * time.Millisecond)
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := httpx.NewClient(server.URL, testHeaders(), httpx.WithTimeout(20*time.Millisecond))

	_, err := client.Get(context.Background(), "/slow", nil)
	require.Error(t, err)
	// An aborted call must be classified as retryable so it consumes a
	// retry attempt instead of failing the logical operation outright.
	assert.True(t, voyager.Retryable(err))
}

func TestClient_RequestDelayPacesCalls(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	delay := 30 * time.Millisecond
	client := httpx.NewClient(server.URL, testHeaders(), httpx.WithRequestDelay(delay))

	start := time.Now()
	_, err := client.Get(context.Background(), "/", nil)
	require.NoError(t, err)

	// Sleep is delay plus jitter in [0, delay).
	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, delay)
}

func TestClient_GetEnvelope(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Content-Type", "application/vnd.linkedin.normalized+json+2.1")
		_, _ = writer.Write([]byte(`{
			"data": {"firstName": "Jane"},
			"included": [{"entityUrn": "urn:li:fsd_profile:ABC"}],
			"paging": {"start": 0, "count": 10, "total": 1}
		}`))
	}))
	defer server.Close()

	client := httpx.NewClient(server.URL, testHeaders())

	envelope, err := client.GetEnvelope(context.Background(), "/voyager/api/identity/profiles/jane/profileView", nil)
	require.NoError(t, err)
	assert.Equal(t, "Jane", envelope.Data["firstName"])
	require.Len(t, envelope.Included, 1)
	require.NotNil(t, envelope.Paging)
	assert.Equal(t, 1, envelope.Paging.Total)
}
