package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const candidateColumns = `id, user_id, name, email, role_applied, applied_date,
	status, ai_fit_score, ai_analysis, resume_text, resume_url, created_at, updated_at`

func scanCandidate(row pgx.Row) (*Candidate, error) {
	var c Candidate
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.RoleApplied,
		&c.AppliedDate, &c.Status, &c.AIFitScore, &c.AIAnalysis,
		&c.ResumeText, &c.ResumeURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListCandidates retrieves all candidates for a user, newest application first
func (db *DB) ListCandidates(ctx context.Context, userID uuid.UUID) ([]Candidate, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+candidateColumns+`
		 FROM candidates WHERE user_id = $1 ORDER BY applied_date DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		c, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, *c)
	}
	return candidates, nil
}

// GetCandidate retrieves a candidate by ID, scoped to the owning user.
// Returns nil when no row matches.
func (db *DB) GetCandidate(ctx context.Context, userID, candidateID uuid.UUID) (*Candidate, error) {
	c, err := scanCandidate(db.pool.QueryRow(ctx,
		`SELECT `+candidateColumns+`
		 FROM candidates WHERE id = $1 AND user_id = $2`,
		candidateID, userID,
	))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get candidate: %w", err)
	}
	return c, nil
}

// InsertCandidate stores a new candidate and returns the row with the
// database-assigned id and timestamps
func (db *DB) InsertCandidate(ctx context.Context, c *Candidate) (*Candidate, error) {
	inserted, err := scanCandidate(db.pool.QueryRow(ctx,
		`INSERT INTO candidates
		   (user_id, name, email, role_applied, applied_date, status,
		    ai_fit_score, ai_analysis, resume_text, resume_url)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING `+candidateColumns,
		c.UserID, c.Name, c.Email, c.RoleApplied, c.AppliedDate, c.Status,
		c.AIFitScore, c.AIAnalysis, c.ResumeText, c.ResumeURL,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert candidate: %w", err)
	}
	return inserted, nil
}

// UpdateCandidateStatus changes a candidate's pipeline status.
// Returns false when the candidate does not exist for this user.
func (db *DB) UpdateCandidateStatus(ctx context.Context, userID, candidateID uuid.UUID, status string) (bool, error) {
	if !ValidStatus(status) {
		return false, fmt.Errorf("invalid candidate status: %q", status)
	}
	result, err := db.pool.Exec(ctx,
		`UPDATE candidates SET status = $1, updated_at = NOW()
		 WHERE id = $2 AND user_id = $3`,
		status, candidateID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to update candidate status: %w", err)
	}
	return result.RowsAffected() > 0, nil
}

// DeleteCandidate removes a candidate. Deleting a candidate that does not
// exist is not an error.
func (db *DB) DeleteCandidate(ctx context.Context, userID, candidateID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`DELETE FROM candidates WHERE id = $1 AND user_id = $2`,
		candidateID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	return nil
}

// CandidateCounts holds per-status row counts for a user
type CandidateCounts struct {
	Total     int `json:"total"`
	New       int `json:"new"`
	Interview int `json:"interview"`
}

// CountCandidates computes per-status counts for a user's candidates
func (db *DB) CountCandidates(ctx context.Context, userID uuid.UUID) (*CandidateCounts, error) {
	var counts CandidateCounts
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*),
		        COUNT(*) FILTER (WHERE status = 'New'),
		        COUNT(*) FILTER (WHERE status = 'Interview')
		 FROM candidates WHERE user_id = $1`,
		userID,
	).Scan(&counts.Total, &counts.New, &counts.Interview)
	if err != nil {
		return nil, fmt.Errorf("failed to count candidates: %w", err)
	}
	return &counts, nil
}
