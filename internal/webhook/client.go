package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultTimeout bounds one webhook round trip. No retries are attempted;
// a slow workflow run should fail visibly rather than pile up requests.
const DefaultTimeout = 120 * time.Second

// maxResponseBytes caps how much of a webhook reply is read. An analysis
// result is a few kilobytes; anything past the cap is discarded.
const maxResponseBytes = 10 << 20

// Client posts JSON payloads to a single configured endpoint.
type Client struct {
	endpoint   string
	setting    string // env var name, reported when endpoint is empty
	httpClient *http.Client
}

// NewClient creates a webhook client for the given endpoint. setting names
// the environment variable the endpoint came from and is used in
// configuration errors.
func NewClient(endpoint, setting string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		setting:  setting,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Configured reports whether an endpoint URL is set.
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

// Endpoint returns the configured endpoint URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Post sends payload as a JSON body and returns the raw response body.
// The body is returned as-is regardless of shape; interpreting it is the
// caller's concern.
func (c *Client) Post(ctx context.Context, payload any) ([]byte, error) {
	if !c.Configured() {
		return nil, &ConfigurationError{Setting: c.setting}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &UpstreamError{Endpoint: c.endpoint, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{Endpoint: c.endpoint, StatusCode: resp.StatusCode}
	}

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, &UpstreamError{Endpoint: c.endpoint, Cause: err}
	}

	return respBody, nil
}
