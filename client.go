package ns

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"
)

// DefaultBaseURL is the NS API gateway base URL.
//
// Convenience methods use paths like "/nsapp-stations/v3" under this base.
const DefaultBaseURL = "https://gateway.apiportal.ns.nl"

// defaultAPIKeyHeader is the subscription key header used by the NS gateway.
const defaultAPIKeyHeader = "Ocp-Apim-Subscription-Key"

// Options configure a Client.
type Options struct {
	// APIKey is the NS API subscription key. Defaults to the NS_API_KEY
	// environment variable.
	APIKey string

	// BaseURL is the API gateway base URL. Defaults to NS_API_URL if set,
	// else DefaultBaseURL.
	BaseURL string

	// APIKeyHeader is the HTTP header name used for the API key.
	// Defaults to "Ocp-Apim-Subscription-Key".
	APIKeyHeader string

	// HTTPClient is used for requests. Defaults to a client with a 30s timeout.
	HTTPClient *http.Client
}

// Client is the NS API client.
type Client struct {
	apiKey       string
	baseURL      *url.URL
	apiKeyHeader string
	httpClient   *http.Client
}

// NewClient constructs a new Client.
//
// Returns ConfigurationError if the API key is missing or if the base URL is invalid.
func NewClient(opts Options) (*Client, error) {
	apiKey := strings.TrimSpace(opts.APIKey)
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("NS_API_KEY"))
	}
	if apiKey == "" {
		return nil, &ConfigurationError{Message: "missing API key: provide Options.APIKey or set NS_API_KEY"}
	}

	base := strings.TrimSpace(opts.BaseURL)
	if base == "" {
		base = strings.TrimSpace(os.Getenv("NS_API_URL"))
	}
	if base == "" {
		base = DefaultBaseURL
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return nil, &ConfigurationError{Message: fmt.Sprintf("invalid base URL: %v", err)}
	}

	header := strings.TrimSpace(opts.APIKeyHeader)
	if header == "" {
		header = defaultAPIKeyHeader
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: 30 * time.Second}
	}

	return &Client{
		apiKey:       apiKey,
		baseURL:      parsed,
		apiKeyHeader: header,
		httpClient:   hc,
	}, nil
}

// Do makes a low-level request to the NS API gateway.
//
// apiPath is joined under the gateway base URL. For JSON responses, out is
// decoded from JSON when non-nil. For non-2xx responses, a typed error
// (*AuthenticationError, *NotFoundError, *RateLimitError, *ServerError, or
// *APIError) is returned.
func (c *Client) Do(ctx context.Context, method, apiPath string, query map[string]string, headers map[string]string, body any, out any) error {
	if ctx == nil {
		ctx = context.Background()
	}

	reqURL := c.buildURL(apiPath, query)

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reqBody)
	if err != nil {
		return err
	}

	req.Header.Set(c.apiKeyHeader, c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		if strings.TrimSpace(k) == "" {
			continue
		}
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, method, reqURL.String(), raw)
	}

	if out == nil || len(raw) == 0 {
		return nil
	}
	return json.Unmarshal(raw, out)
}

// statusError maps a non-2xx response to a typed error.
//
// The message is taken from a JSON "message" field when the body carries one,
// else the raw body text.
func statusError(status int, method, reqURL string, raw []byte) error {
	message := strings.TrimSpace(string(raw))
	var payload struct {
		Message string `json:"message"`
	}
	if len(raw) > 0 && json.Unmarshal(raw, &payload) == nil && payload.Message != "" {
		message = payload.Message
	}

	apiErr := APIError{StatusCode: status, Method: method, URL: reqURL, Message: message}
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return &AuthenticationError{APIError: apiErr}
	case status == http.StatusNotFound:
		return &NotFoundError{APIError: apiErr}
	case status == http.StatusTooManyRequests:
		return &RateLimitError{APIError: apiErr}
	case status >= 500:
		return &ServerError{APIError: apiErr}
	default:
		return &apiErr
	}
}

func (c *Client) buildURL(apiPath string, query map[string]string) *url.URL {
	// Ensure path join doesn't drop a base path.
	u := *c.baseURL
	joined := apiPath
	if !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}
	u.Path = path.Clean(strings.TrimSuffix(u.Path, "/") + joined)
	q := u.Query()
	for k, v := range query {
		if strings.TrimSpace(k) == "" || v == "" {
			continue
		}
		q.Set(k, v)
	}
	u.RawQuery = q.Encode()
	return &u
}
