package db

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/recruit-ai/internal/types"
)

// Candidate is a row in the candidates table
type Candidate struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	RoleApplied string    `json:"role_applied"`
	AppliedDate time.Time `json:"applied_date"`
	Status      string    `json:"status"`
	AIFitScore  float64   `json:"ai_fit_score"`
	AIAnalysis  *string   `json:"ai_analysis,omitempty"`
	ResumeText  *string   `json:"resume_text,omitempty"`
	ResumeURL   *string   `json:"resume_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// persistedStatuses is the full status set the database accepts. It is a
// superset of the dashboard-facing one: Hired exists only at this layer.
var persistedStatuses = map[string]bool{
	string(types.StatusNew):       true,
	string(types.StatusInterview): true,
	string(types.StatusRejected):  true,
	"Hired":                       true,
}

// ValidStatus reports whether s is a status the candidates table accepts
func ValidStatus(s string) bool {
	return persistedStatuses[s]
}

// ToCandidate converts a database row to the dashboard candidate shape
func (c *Candidate) ToCandidate() types.Candidate {
	out := types.Candidate{
		ID:          c.ID.String(),
		Name:        c.Name,
		Email:       c.Email,
		RoleApplied: c.RoleApplied,
		AppliedDate: c.AppliedDate,
		Status:      types.CandidateStatus(c.Status),
		AIFitScore:  c.AIFitScore,
	}
	if c.AIAnalysis != nil {
		out.AIAnalysis = *c.AIAnalysis
	}
	if c.ResumeText != nil {
		out.ResumeText = *c.ResumeText
	}
	if c.ResumeURL != nil {
		out.ResumeURL = *c.ResumeURL
	}
	return out
}

// Job is a row in the jobs table
type Job struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Department  string    `json:"department"`
	Openings    int       `json:"openings"`
	Applicants  int       `json:"applicants"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToJob converts a database row to the dashboard job shape
func (j *Job) ToJob() types.Job {
	return types.Job{
		ID:          j.ID.String(),
		Title:       j.Title,
		Department:  j.Department,
		Openings:    j.Openings,
		Applicants:  j.Applicants,
		Description: j.Description,
	}
}

// User represents a user account
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AvatarURL    string    `json:"avatar_url,omitempty"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize to JSON
	PasswordSet  bool      `json:"password_set" db:"password_set"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
