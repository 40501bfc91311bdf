package notion

import (
	"errors"
	"fmt"
)

// Common errors returned by the Notion client.
var (
	// ErrInvalidHeadingLevel indicates a heading level outside 1-3.
	ErrInvalidHeadingLevel = errors.New("heading level must be 1, 2, or 3")

	// ErrNothingToUpdate indicates an update call with no fields to change.
	ErrNothingToUpdate = errors.New("at least one of title or icon must be specified")
)

// InvalidIDError indicates a page, block, or database identifier that does
// not contain exactly 32 hex digits.
type InvalidIDError struct {
	Input  string
	Length int
}

// Error implements the error interface
func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("invalid ID %q: expected 32 hex characters, got %d", e.Input, e.Length)
}

// APIError represents a non-2xx, non-429 response from the Notion API.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("notion API error: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a missing resource
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// RateLimitError indicates the API kept returning 429 past the retry budget.
type RateLimitError struct {
	Attempts int
}

// Error implements the error interface
func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded after %d retries", e.Attempts)
}
