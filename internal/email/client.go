package email

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/recruit-ai/internal/types"
	"github.com/jonathan/recruit-ai/internal/webhook"
)

// EndpointSetting is the environment variable that configures the email
// dispatch webhook URL.
const EndpointSetting = "EMAIL_WEBHOOK_URL"

// Dispatch is the payload posted to the email workflow webhook.
type Dispatch struct {
	CandidateName  string  `json:"candidateName"`
	CandidateEmail string  `json:"candidateEmail"`
	JobTitle       string  `json:"jobTitle"`
	AIFitScore     float64 `json:"aiFitScore"`
	EmailType      Type    `json:"emailType"`
	EmailContent   string  `json:"emailContent"`
}

// Client sends candidate emails through the external workflow webhook.
// Fire-and-forget: the outcome only gates a success indicator in the UI.
type Client struct {
	webhook *webhook.Client
	logger  *zap.Logger
}

// NewClient creates an email dispatch client for the given webhook endpoint.
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		webhook: webhook.NewClient(endpoint, EndpointSetting, timeout),
		logger:  logger,
	}
}

// Configured reports whether the email webhook URL is set.
func (c *Client) Configured() bool {
	return c.webhook.Configured()
}

// Send generates the auto-pilot email for the candidate and posts it to the
// workflow webhook. The response body is ignored; only success matters.
func (c *Client) Send(ctx context.Context, candidate types.Candidate) (Type, error) {
	kind, body := Generate(candidate)

	_, err := c.webhook.Post(ctx, Dispatch{
		CandidateName:  candidate.Name,
		CandidateEmail: candidate.Email,
		JobTitle:       candidate.RoleApplied,
		AIFitScore:     candidate.AIFitScore,
		EmailType:      kind,
		EmailContent:   body,
	})
	if err != nil {
		c.logger.Error("email dispatch failed",
			zap.String("candidate", candidate.Name),
			zap.String("emailType", string(kind)),
			zap.Error(err))
		return kind, err
	}

	c.logger.Info("email dispatched",
		zap.String("candidate", candidate.Name),
		zap.String("emailType", string(kind)))
	return kind, nil
}
