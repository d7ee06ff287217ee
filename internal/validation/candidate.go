// Package validation provides candidate record sanity checks applied at the
// roster-insertion boundary.
package validation

import (
	"math"

	"github.com/jonathan/recruit-ai/internal/types"
)

var validStatuses = map[types.CandidateStatus]bool{
	types.StatusNew:       true,
	types.StatusInterview: true,
	types.StatusRejected:  true,
}

// IsValidScore reports whether an AI fit score is inside the declared
// [0,100] domain. NaN is never valid.
func IsValidScore(score float64) bool {
	return !math.IsNaN(score) && score >= 0 && score <= 100
}

// ClampScore forces a score into [0,100]. The normalizer deliberately does
// not clamp, so out-of-range upstream scores are corrected here, at the
// insertion boundary. NaN clamps to 0.
func ClampScore(score float64) float64 {
	if math.IsNaN(score) {
		return 0
	}
	return math.Max(0, math.Min(100, score))
}

// IsValidStatus reports whether a status string is one of the UI-facing
// enum values.
func IsValidStatus(status types.CandidateStatus) bool {
	return validStatuses[status]
}

// ValidateCandidate checks that a candidate record has all required fields
// with valid values before it enters the roster.
func ValidateCandidate(c *types.Candidate) bool {
	if c == nil {
		return false
	}
	return c.ID != "" &&
		c.Name != "" &&
		c.RoleApplied != "" &&
		!c.AppliedDate.IsZero() &&
		IsValidStatus(c.Status) &&
		IsValidScore(c.AIFitScore) &&
		c.Email != ""
}
