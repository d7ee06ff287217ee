// Package types provides type definitions for structured data used throughout the recruit-ai system.
package types

import (
	"time"
)

// CandidateStatus is the pipeline status shown on the dashboard.
// The database accepts a superset of these values (see db.ValidStatus);
// Hired exists only at the persistence layer.
type CandidateStatus string

const (
	StatusNew       CandidateStatus = "New"
	StatusInterview CandidateStatus = "Interview"
	StatusRejected  CandidateStatus = "Rejected"
)

// Candidate is a single applicant in the recruiting pipeline.
type Candidate struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	RoleApplied string          `json:"roleApplied"`
	AppliedDate time.Time       `json:"appliedDate"`
	Status      CandidateStatus `json:"status"`
	AIFitScore  float64         `json:"aiFitScore"`
	AIAnalysis  string          `json:"aiAnalysis"`
	ResumeText  string          `json:"resumeText,omitempty"`
	ResumeURL   string          `json:"resumeUrl,omitempty"`
}

// Recommendation is the tri-state outcome of an AI resume analysis.
type Recommendation string

const (
	RecommendInterview Recommendation = "interview"
	RecommendReject    Recommendation = "reject"
	RecommendReview    Recommendation = "review"
)

// AnalysisResult is the normalized outcome of one resume analysis request.
// It is ephemeral: the caller converts it into a Candidate and discards it.
type AnalysisResult struct {
	Score          float64        `json:"score"`
	Analysis       string         `json:"analysis"`
	Strengths      []string       `json:"strengths"`
	Weaknesses     []string       `json:"weaknesses"`
	Recommendation Recommendation `json:"recommendation"`
}

// Job is an open position candidates apply to. Read-only in this system;
// consumed as input to analysis requests and for display.
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Department  string `json:"department"`
	Openings    int    `json:"openings"`
	Applicants  int    `json:"applicants"`
	Description string `json:"description,omitempty"`
}

// DashboardMetrics holds the derived counters shown in the command center.
// Recomputed from the roster whenever it changes; never persisted.
type DashboardMetrics struct {
	CandidatesProcessed int     `json:"candidatesProcessed"`
	TimeSaved           float64 `json:"timeSaved"`
	PendingReview       int     `json:"pendingReview"`
	InterviewsScheduled int     `json:"interviewsScheduled"`
}
