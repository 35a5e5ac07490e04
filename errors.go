package ns

import "fmt"

// ConfigurationError indicates invalid or missing client configuration.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	if e == nil {
		return "ns: configuration error"
	}
	return fmt.Sprintf("ns: configuration error: %s", e.Message)
}

// APIError is returned for non-2xx HTTP responses.
//
// Specific status codes map to AuthenticationError, NotFoundError,
// RateLimitError, and ServerError, all of which embed APIError.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Message    string
}

func (e *APIError) Error() string {
	if e == nil {
		return "ns: api error"
	}
	if e.Message != "" {
		return fmt.Sprintf("ns: api error (%d) %s %s: %s", e.StatusCode, e.Method, e.URL, e.Message)
	}
	return fmt.Sprintf("ns: api error (%d) %s %s", e.StatusCode, e.Method, e.URL)
}

// AuthenticationError is returned for HTTP 401 and 403 responses.
type AuthenticationError struct {
	APIError
}

// NotFoundError is returned for HTTP 404 responses.
type NotFoundError struct {
	APIError
}

// RateLimitError is returned for HTTP 429 responses.
type RateLimitError struct {
	APIError
}

// ServerError is returned for HTTP 5xx responses.
type ServerError struct {
	APIError
}
