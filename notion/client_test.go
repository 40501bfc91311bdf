package notion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler, opts ...Option) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{WithBaseURL(server.URL), WithRetryDelay(0)}, opts...)
	client, err := NewClient("test-key", zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	_, err := NewClient("", zerolog.Nop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestDoSetsHeaders(t *testing.T) {
	var gotAuth, gotVersion, gotContentType string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotVersion = r.Header.Get("Notion-Version")
		gotContentType = r.Header.Get("Content-Type")
		w.Write([]byte(`{}`))
	}), WithAPIVersion("2024-01-01"))

	_, err := client.do(context.Background(), request{
		method: http.MethodPost,
		path:   "/search",
		body:   searchRequest{Query: "x"},
	})

	require.NoError(t, err)
	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "2024-01-01", gotVersion)
	assert.Equal(t, "application/json", gotContentType)
}

func TestDoRetriesOnRateLimit(t *testing.T) {
	attempts := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts <= 3 {
			w.Header().Set("Retry-After", "0")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{"ok":true}`))
	}))

	body, err := client.do(context.Background(), request{method: http.MethodGet, path: "/pages/x"})

	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(body))
	// Three throttled attempts plus the final success.
	assert.Equal(t, 4, attempts)
}

func TestDoExhaustsRetryBudget(t *testing.T) {
	attempts := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}))

	_, err := client.do(context.Background(), request{method: http.MethodGet, path: "/pages/x"})

	var rateErr *RateLimitError
	require.True(t, errors.As(err, &rateErr))
	assert.Equal(t, 3, rateErr.Attempts)
	assert.Equal(t, 4, attempts)
}

func TestDoRetriesWithoutRetryAfterHeader(t *testing.T) {
	attempts := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			// No Retry-After header: the configured default delay applies.
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Write([]byte(`{}`))
	}))

	_, err := client.do(context.Background(), request{method: http.MethodGet, path: "/pages/x"})

	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
}

func TestDoReturnsAPIError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"validation failed"}`))
	}))

	_, err := client.do(context.Background(), request{method: http.MethodGet, path: "/pages/x"})

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "validation failed")
	assert.False(t, apiErr.IsNotFound())
}

func TestAPIErrorClassification(t *testing.T) {
	assert.True(t, (&APIError{StatusCode: 404}).IsNotFound())
	assert.True(t, (&APIError{StatusCode: 401}).IsUnauthorized())
	assert.True(t, (&APIError{StatusCode: 403}).IsUnauthorized())
	assert.False(t, (&APIError{StatusCode: 500}).IsUnauthorized())
}

func TestWithMaxRetries(t *testing.T) {
	attempts := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.Header().Set("Retry-After", "0")
		w.WriteHeader(http.StatusTooManyRequests)
	}), WithMaxRetries(0))

	_, err := client.do(context.Background(), request{method: http.MethodGet, path: "/pages/x"})

	var rateErr *RateLimitError
	require.True(t, errors.As(err, &rateErr))
	assert.Equal(t, 1, attempts)
}
