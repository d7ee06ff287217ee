// Package dashboard coordinates the recruiting command center: it runs
// resume analyses, maintains each user's candidate roster, and derives the
// metrics the dashboard displays.
package dashboard

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/recruit-ai/internal/analysis"
	"github.com/jonathan/recruit-ai/internal/db"
	"github.com/jonathan/recruit-ai/internal/email"
	"github.com/jonathan/recruit-ai/internal/roster"
	"github.com/jonathan/recruit-ai/internal/types"
	"github.com/jonathan/recruit-ai/internal/validation"
)

// Persistence is the database surface the dashboard service depends on
type Persistence interface {
	ListCandidates(ctx context.Context, userID uuid.UUID) ([]db.Candidate, error)
	GetCandidate(ctx context.Context, userID, candidateID uuid.UUID) (*db.Candidate, error)
	InsertCandidate(ctx context.Context, c *db.Candidate) (*db.Candidate, error)
	UpdateCandidateStatus(ctx context.Context, userID, candidateID uuid.UUID, status string) (bool, error)
	DeleteCandidate(ctx context.Context, userID, candidateID uuid.UUID) error
	CountCandidates(ctx context.Context, userID uuid.UUID) (*db.CandidateCounts, error)
	ListJobs(ctx context.Context) ([]db.Job, error)
}

// Analyzer requests resume analyses from the AI workflow
type Analyzer interface {
	Configured() bool
	Analyze(ctx context.Context, req analysis.Request) (types.AnalysisResult, error)
}

// EmailSender dispatches auto-pilot candidate emails
type EmailSender interface {
	Configured() bool
	Send(ctx context.Context, candidate types.Candidate) (email.Type, error)
}

// Service provides the dashboard's business logic. Each user gets an
// in-memory roster hydrated from the database on first access; writes go
// through to the database and then to the roster.
type Service struct {
	store    Persistence
	analyzer Analyzer
	emails   EmailSender
	logger   *zap.Logger

	mu      sync.Mutex
	rosters map[uuid.UUID]*roster.Store
}

// NewService creates a dashboard service with the given collaborators
func NewService(store Persistence, analyzer Analyzer, emails EmailSender, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		analyzer: analyzer,
		emails:   emails,
		logger:   logger,
		rosters:  make(map[uuid.UUID]*roster.Store),
	}
}

// rosterFor returns the user's roster, hydrating it from the database the
// first time it is requested. A store is published only once hydration
// succeeds, so a failed load is retried on the next call.
func (s *Service) rosterFor(ctx context.Context, userID uuid.UUID) (*roster.Store, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.rosters[userID]; ok {
		return r, nil
	}

	rows, err := s.store.ListCandidates(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to hydrate roster: %w", err)
	}
	candidates := make([]types.Candidate, 0, len(rows))
	for i := range rows {
		candidates = append(candidates, rows[i].ToCandidate())
	}
	r := roster.NewStore()
	r.Hydrate(candidates)
	s.rosters[userID] = r
	return r, nil
}

// Candidates returns the user's roster ordered by application date, newest
// first
func (s *Service) Candidates(ctx context.Context, userID uuid.UUID) ([]types.Candidate, error) {
	r, err := s.rosterFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	var out []types.Candidate
	for c := range r.SortedByAppliedDate() {
		out = append(out, c)
	}
	return out, nil
}

// AnalyzeRequest carries the inputs for one resume analysis
type AnalyzeRequest struct {
	CandidateName  string
	CandidateEmail string
	ResumeText     string
	JobTitle       string
	JobDescription string
}

// AnalyzeOutcome is what one completed analysis produced
type AnalyzeOutcome struct {
	Candidate types.Candidate      `json:"candidate"`
	Result    types.AnalysisResult `json:"result"`
}

// fallbackEmail derives a placeholder address from the candidate name when
// no email was supplied
func fallbackEmail(name string) string {
	local := strings.Join(strings.Fields(strings.ToLower(name)), ".")
	return local + "@email.com"
}

// Analyze runs a resume through the AI workflow and records the candidate.
// The returned score is clamped to [0,100] before the candidate is stored;
// the raw analysis result is returned alongside.
func (s *Service) Analyze(ctx context.Context, userID uuid.UUID, req AnalyzeRequest) (*AnalyzeOutcome, error) {
	result, err := s.analyzer.Analyze(ctx, analysis.Request{
		CandidateName:  req.CandidateName,
		CandidateEmail: req.CandidateEmail,
		ResumeText:     req.ResumeText,
		JobDescription: req.JobDescription,
		JobTitle:       req.JobTitle,
	})
	if err != nil {
		return nil, err
	}

	candidateEmail := req.CandidateEmail
	if candidateEmail == "" {
		candidateEmail = fallbackEmail(req.CandidateName)
	}

	row := &db.Candidate{
		UserID:      userID,
		Name:        req.CandidateName,
		Email:       candidateEmail,
		RoleApplied: req.JobTitle,
		AppliedDate: time.Now(),
		Status:      string(types.StatusNew),
		AIFitScore:  validation.ClampScore(result.Score),
		AIAnalysis:  &result.Analysis,
		ResumeText:  &req.ResumeText,
	}
	inserted, err := s.store.InsertCandidate(ctx, row)
	if err != nil {
		return nil, err
	}

	candidate := inserted.ToCandidate()
	r, err := s.rosterFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	r.Insert(candidate)

	s.logger.Info("candidate analyzed",
		zap.String("candidate", candidate.Name),
		zap.String("role", candidate.RoleApplied),
		zap.Float64("score", candidate.AIFitScore))

	return &AnalyzeOutcome{Candidate: candidate, Result: result}, nil
}

// UpdateStatus transitions a candidate's status, writing through to the
// database and then the roster. Returns false when the candidate does not
// exist for this user.
func (s *Service) UpdateStatus(ctx context.Context, userID uuid.UUID, candidateID string, status string) (bool, error) {
	id, err := uuid.Parse(candidateID)
	if err != nil {
		return false, fmt.Errorf("invalid candidate id: %w", err)
	}

	updated, err := s.store.UpdateCandidateStatus(ctx, userID, id, status)
	if err != nil || !updated {
		return updated, err
	}

	r, err := s.rosterFor(ctx, userID)
	if err != nil {
		return false, err
	}
	// Hired exists only in the database; the roster keeps its last
	// dashboard-facing status.
	if validation.IsValidStatus(types.CandidateStatus(status)) {
		r.SetStatus(candidateID, types.CandidateStatus(status))
	}
	return true, nil
}

// Delete removes a candidate from the database and the roster. Deleting an
// absent candidate is not an error.
func (s *Service) Delete(ctx context.Context, userID uuid.UUID, candidateID string) error {
	id, err := uuid.Parse(candidateID)
	if err != nil {
		return fmt.Errorf("invalid candidate id: %w", err)
	}
	if err := s.store.DeleteCandidate(ctx, userID, id); err != nil {
		return err
	}

	r, err := s.rosterFor(ctx, userID)
	if err != nil {
		return err
	}
	r.Remove(candidateID)
	return nil
}

// SendEmail dispatches the auto-pilot email for a candidate. The email kind
// follows from the fit score; sending never changes the candidate's status.
func (s *Service) SendEmail(ctx context.Context, userID uuid.UUID, candidateID string) (email.Type, error) {
	r, err := s.rosterFor(ctx, userID)
	if err != nil {
		return "", err
	}
	candidate, ok := r.Get(candidateID)
	if !ok {
		id, parseErr := uuid.Parse(candidateID)
		if parseErr != nil {
			return "", fmt.Errorf("invalid candidate id: %w", parseErr)
		}
		row, getErr := s.store.GetCandidate(ctx, userID, id)
		if getErr != nil {
			return "", getErr
		}
		if row == nil {
			return "", &ErrCandidateNotFound{ID: candidateID}
		}
		candidate = row.ToCandidate()
	}
	return s.emails.Send(ctx, candidate)
}

// Jobs lists the open positions
func (s *Service) Jobs(ctx context.Context) ([]types.Job, error) {
	rows, err := s.store.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	jobs := make([]types.Job, 0, len(rows))
	for i := range rows {
		jobs = append(jobs, rows[i].ToJob())
	}
	return jobs, nil
}

// Metrics derives the dashboard counters. Database counts and roster state
// are gathered concurrently; the persisted counts are authoritative, the
// roster contributes the time-saved accumulator.
func (s *Service) Metrics(ctx context.Context, userID uuid.UUID) (*types.DashboardMetrics, error) {
	r, err := s.rosterFor(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		counts    *db.CandidateCounts
		rosterMet types.DashboardMetrics
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		counts, err = s.store.CountCandidates(gctx, userID)
		return err
	})
	g.Go(func() error {
		rosterMet = r.Metrics()
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &types.DashboardMetrics{
		CandidatesProcessed: counts.Total,
		TimeSaved:           rosterMet.TimeSaved,
		PendingReview:       counts.New,
		InterviewsScheduled: counts.Interview,
	}, nil
}
