package analysis

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/jonathan/recruit-ai/internal/types"
	"github.com/jonathan/recruit-ai/internal/webhook"
)

// EndpointSetting is the environment variable that configures the analysis
// webhook URL.
const EndpointSetting = "ANALYSIS_WEBHOOK_URL"

// Request carries everything the workflow needs to score one resume.
type Request struct {
	CandidateName  string `json:"candidateName"`
	CandidateEmail string `json:"candidateEmail,omitempty"`
	ResumeText     string `json:"resumeText"`
	JobDescription string `json:"jobDescription"`
	JobTitle       string `json:"jobTitle"`
}

// Client requests resume analyses from the external workflow webhook.
// One outbound POST per Analyze call; no retries, no dedup.
type Client struct {
	webhook *webhook.Client
	logger  *zap.Logger
}

// NewClient creates an analysis client for the given webhook endpoint.
func NewClient(endpoint string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		webhook: webhook.NewClient(endpoint, EndpointSetting, timeout),
		logger:  logger,
	}
}

// Configured reports whether the analysis webhook URL is set.
func (c *Client) Configured() bool {
	return c.webhook.Configured()
}

// Analyze sends the resume to the workflow webhook and normalizes whatever
// comes back. Transport failures and non-success statuses are returned as
// errors; response-shape anomalies are not. A malformed AI reply still yields
// a reviewable result rather than blocking the recruiter.
func (c *Client) Analyze(ctx context.Context, req Request) (types.AnalysisResult, error) {
	body, err := c.webhook.Post(ctx, req)
	if err != nil {
		c.logger.Error("resume analysis request failed",
			zap.String("candidate", req.CandidateName),
			zap.Error(err))
		return types.AnalysisResult{}, err
	}

	result := NormalizeBytes(body, req.CandidateName)
	c.logger.Info("resume analysis completed",
		zap.String("candidate", req.CandidateName),
		zap.Float64("score", result.Score),
		zap.String("recommendation", string(result.Recommendation)))
	return result, nil
}
