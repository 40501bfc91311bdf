package notion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultBaseURL = "https://api.notion.com/v1"

	// DefaultAPIVersion is the Notion-Version header sent with every request
	// unless overridden.
	DefaultAPIVersion = "2025-09-03"

	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultRetryDelay = 1 * time.Second

	// maxPageSize is the largest page_size the API accepts.
	maxPageSize = 100
)

// Client talks to the Notion API. It holds the credential, the version
// header, and the retry budget for rate-limited requests. A Client is built
// once per command invocation and carries no mutable state.
type Client struct {
	baseURL    string
	apiKey     string
	apiVersion string
	httpClient *http.Client
	logger     zerolog.Logger
	maxRetries int
	retryDelay time.Duration
}

// NewClient creates a new Notion client
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("notion API key is required")
	}

	options := defaultClientOptions()
	for _, opt := range opts {
		opt(&options)
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		apiKey:     apiKey,
		apiVersion: options.apiVersion,
		httpClient: &http.Client{Timeout: options.timeout},
		logger:     logger,
		maxRetries: options.maxRetries,
		retryDelay: options.retryDelay,
	}, nil
}

// request is the template for one logical API call. It is a plain value so
// retries can rebuild the HTTP attempt from scratch; the body is marshaled
// fresh per attempt and never shared between them.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
}

// do sends the request, retrying on 429 responses. The wait between attempts
// comes from the Retry-After header (integer seconds) when present, the
// default delay otherwise. Each retry is announced to the operator, since a
// silently stalled command looks like a hang.
func (c *Client) do(ctx context.Context, r request) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		req, err := c.buildRequest(ctx, r)
		if err != nil {
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests {
			if attempt >= c.maxRetries {
				return nil, &RateLimitError{Attempts: c.maxRetries}
			}

			wait := c.retryDelay
			if v := resp.Header.Get("Retry-After"); v != "" {
				if secs, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && secs >= 0 {
					wait = time.Duration(secs) * time.Second
				}
			}

			c.logger.Warn().
				Int("attempt", attempt+1).
				Int("max_attempts", c.maxRetries).
				Dur("wait", wait).
				Msg("Rate limited, waiting before retry")

			time.Sleep(wait)
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
		}

		return body, nil
	}
}

// doJSON sends the request and decodes the response body into out.
func (c *Client) doJSON(ctx context.Context, r request, out any) error {
	body, err := c.do(ctx, r)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *Client) buildRequest(ctx context.Context, r request) (*http.Request, error) {
	requestURL := c.baseURL + r.path
	if len(r.query) > 0 {
		requestURL += "?" + r.query.Encode()
	}

	var reader io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Notion-Version", c.apiVersion)
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}
