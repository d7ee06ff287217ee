// Package email generates auto-pilot candidate emails and dispatches them
// through the email workflow webhook.
package email

import (
	"fmt"

	"github.com/jonathan/recruit-ai/internal/types"
)

// Type distinguishes the two auto-pilot email kinds.
type Type string

const (
	TypeInterview Type = "interview"
	TypeRejection Type = "rejection"
)

// autoPilotThreshold picks the email kind from the fit score: above it the
// candidate gets an interview invite, otherwise a rejection.
const autoPilotThreshold = 70

// TypeFor returns the auto-pilot email kind for a candidate's fit score.
func TypeFor(score float64) Type {
	if score > autoPilotThreshold {
		return TypeInterview
	}
	return TypeRejection
}

// Generate produces the email body for a candidate based on their fit score.
func Generate(c types.Candidate) (Type, string) {
	kind := TypeFor(c.AIFitScore)
	if kind == TypeInterview {
		return kind, interviewBody(c)
	}
	return kind, rejectionBody(c)
}

func interviewBody(c types.Candidate) string {
	return fmt.Sprintf(`Hi %s,

Thank you for applying for the %s position at Recruit AI. We were impressed by your background and would love to learn more about your experience.

We'd like to invite you to an interview to discuss the role in more detail. Please let us know your availability for the coming week, and we'll schedule a time that works for you.

Looking forward to speaking with you!

Best regards,
The Recruit AI Team`, c.Name, c.RoleApplied)
}

func rejectionBody(c types.Candidate) string {
	return fmt.Sprintf(`Hi %s,

Thank you for your interest in the %s position at Recruit AI and for taking the time to apply.

After careful consideration, we've decided to move forward with other candidates whose experience more closely aligns with our current needs. This was a difficult decision, as we received many strong applications.

We encourage you to apply for future openings that match your skills and experience. We'll keep your resume on file and reach out if a suitable opportunity arises.

We wish you the best in your job search and future endeavors.

Best regards,
The Recruit AI Team`, c.Name, c.RoleApplied)
}
