package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/recruit-ai/internal/dashboard"
	"github.com/jonathan/recruit-ai/internal/db"
	"github.com/jonathan/recruit-ai/internal/extraction"
	"github.com/jonathan/recruit-ai/internal/format"
	"github.com/jonathan/recruit-ai/internal/scoring"
	"github.com/jonathan/recruit-ai/internal/server/middleware"
	"github.com/jonathan/recruit-ai/internal/types"
)

// maxResumeUpload bounds the multipart form size for resume uploads.
const maxResumeUpload = 10 << 20 // 10 MiB

// analyzeRequest is the JSON body for POST /candidates/analyze.
type analyzeRequest struct {
	CandidateName  string `json:"candidateName" validate:"required,min=1"`
	CandidateEmail string `json:"candidateEmail" validate:"omitempty,email"`
	ResumeText     string `json:"resumeText" validate:"required"`
	JobTitle       string `json:"jobTitle" validate:"required"`
	JobDescription string `json:"jobDescription"`
}

// statusRequest is the JSON body for PATCH /candidates/{id}/status.
type statusRequest struct {
	Status string `json:"status" validate:"required"`
}

// candidateView is a candidate plus the display fields the dashboard derives
// from it: a formatted application date and the score classification.
type candidateView struct {
	types.Candidate
	AppliedDateDisplay string                 `json:"appliedDateDisplay"`
	Fit                scoring.Classification `json:"fit"`
}

func viewOf(c types.Candidate) candidateView {
	return candidateView{
		Candidate:          c,
		AppliedDateDisplay: format.Date(c.AppliedDate),
		Fit:                scoring.Classify(c.AIFitScore),
	}
}

// handleListCandidates returns the user's roster, newest application first.
func (s *Server) handleListCandidates(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	candidates, err := s.svc.Candidates(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	views := make([]candidateView, 0, len(candidates))
	for _, c := range candidates {
		views = append(views, viewOf(c))
	}
	writeJSON(s.logger, w, http.StatusOK, views)
}

// handleAnalyze runs a resume through the AI workflow and records the
// candidate. Accepts a JSON body, or a multipart form with a "resume" file
// whose text is extracted server-side.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	req, err := s.parseAnalyzeRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	outcome, err := s.svc.Analyze(r.Context(), userID, dashboard.AnalyzeRequest{
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		ResumeText:     req.ResumeText,
		JobTitle:       req.JobTitle,
		JobDescription: req.JobDescription,
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(s.logger, w, http.StatusCreated, outcome)
}

// parseAnalyzeRequest decodes the analyze payload from either a JSON body or
// a multipart form upload.
func (s *Server) parseAnalyzeRequest(r *http.Request) (*analyzeRequest, error) {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxResumeUpload); err != nil {
			return nil, &ErrValidation{Field: "resume", Message: "invalid multipart form"}
		}

		req := &analyzeRequest{
			CandidateName:  r.FormValue("candidateName"),
			CandidateEmail: r.FormValue("candidateEmail"),
			JobTitle:       r.FormValue("jobTitle"),
			JobDescription: r.FormValue("jobDescription"),
		}

		file, header, err := r.FormFile("resume")
		if err != nil {
			return nil, &ErrValidation{Field: "resume", Message: "resume file is required"}
		}
		defer file.Close()

		text, err := extraction.Extract(header.Filename, file)
		if err != nil {
			return nil, err
		}
		req.ResumeText = text
		return req, nil
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, &ErrValidation{Field: "body", Message: "invalid request body"}
	}
	return &req, nil
}

// handleUpdateStatus transitions a candidate's pipeline status.
func (s *Server) handleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if !db.ValidStatus(req.Status) {
		s.errorResponse(w, http.StatusBadRequest, "invalid candidate status: "+req.Status)
		return
	}

	candidateID := r.PathValue("id")
	updated, err := s.svc.UpdateStatus(r.Context(), userID, candidateID, req.Status)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if !updated {
		s.errorResponse(w, http.StatusNotFound, "candidate not found: "+candidateID)
		return
	}

	writeJSON(s.logger, w, http.StatusOK, map[string]string{"id": candidateID, "status": req.Status})
}

// handleDeleteCandidate removes a candidate. Deleting an absent candidate
// still returns 204.
func (s *Server) handleDeleteCandidate(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := s.svc.Delete(r.Context(), userID, r.PathValue("id")); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleSendEmail dispatches the auto-pilot email for a candidate.
func (s *Server) handleSendEmail(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	kind, err := s.svc.SendEmail(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	writeJSON(s.logger, w, http.StatusOK, map[string]any{"emailType": kind, "success": true})
}

// handleListJobs returns the open positions.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := s.svc.Jobs(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if jobs == nil {
		jobs = []types.Job{}
	}
	writeJSON(s.logger, w, http.StatusOK, jobs)
}

// handleMetrics returns the dashboard counters.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	metrics, err := s.svc.Metrics(r.Context(), userID)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	writeJSON(s.logger, w, http.StatusOK, struct {
		types.DashboardMetrics
		TimeSavedDisplay string `json:"timeSavedDisplay"`
	}{*metrics, format.TimeSaved(metrics.TimeSaved)})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(s.logger, w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response.
func writeJSON(logger *zap.Logger, w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(s.logger, w, status, map[string]string{"error": message})
}
