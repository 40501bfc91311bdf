package notion

import "time"

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	apiVersion string
	timeout    time.Duration
	maxRetries int
	retryDelay time.Duration
}

func defaultClientOptions() clientOptions {
	return clientOptions{
		baseURL:    defaultBaseURL,
		apiVersion: DefaultAPIVersion,
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
		retryDelay: defaultRetryDelay,
	}
}

// WithBaseURL points the client at a different API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithAPIVersion overrides the Notion-Version header value.
func WithAPIVersion(version string) Option {
	return func(o *clientOptions) {
		if version != "" {
			o.apiVersion = version
		}
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithMaxRetries sets the maximum number of retries on rate-limit responses.
func WithMaxRetries(retries int) Option {
	return func(o *clientOptions) {
		if retries >= 0 {
			o.maxRetries = retries
		}
	}
}

// WithRetryDelay sets the wait between retries when the API sends no
// Retry-After header.
func WithRetryDelay(delay time.Duration) Option {
	return func(o *clientOptions) {
		if delay >= 0 {
			o.retryDelay = delay
		}
	}
}
