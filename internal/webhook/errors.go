// Package webhook provides the outbound HTTP plumbing shared by the
// workflow-automation endpoints (resume analysis, email dispatch).
package webhook

import "fmt"

// ConfigurationError indicates a required endpoint URL was never configured.
// It is a precondition failure for the attempted action, not a network error.
type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s is not configured; add it to your environment", e.Setting)
}

// UpstreamError indicates the webhook endpoint failed: either the transport
// call itself or a non-success HTTP status. Not retried automatically.
type UpstreamError struct {
	Endpoint   string
	StatusCode int
	Cause      error
}

func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("webhook request to %s failed: %v", e.Endpoint, e.Cause)
	}
	return fmt.Sprintf("webhook %s returned status %d", e.Endpoint, e.StatusCode)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}
