package validation

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/recruit-ai/internal/types"
)

func TestIsValidScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		valid bool
	}{
		{"zero", 0, true},
		{"hundred", 100, true},
		{"mid-range", 72.5, true},
		{"negative", -1, false},
		{"above range", 100.01, false},
		{"NaN", math.NaN(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValidScore(tt.score))
		})
	}
}

func TestClampScore(t *testing.T) {
	assert.Equal(t, float64(0), ClampScore(-20))
	assert.Equal(t, float64(100), ClampScore(140))
	assert.Equal(t, float64(88), ClampScore(88))
	assert.Equal(t, float64(0), ClampScore(math.NaN()))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus(types.StatusNew))
	assert.True(t, IsValidStatus(types.StatusInterview))
	assert.True(t, IsValidStatus(types.StatusRejected))
	// Hired exists only at the persistence layer.
	assert.False(t, IsValidStatus(types.CandidateStatus("Hired")))
	assert.False(t, IsValidStatus(types.CandidateStatus("")))
}

func TestValidateCandidate(t *testing.T) {
	valid := func() types.Candidate {
		return types.Candidate{
			ID:          "c-1",
			Name:        "Jane Doe",
			Email:       "jane@email.com",
			RoleApplied: "Senior Product Manager",
			AppliedDate: time.Now(),
			Status:      types.StatusNew,
			AIFitScore:  81,
		}
	}

	t.Run("valid candidate", func(t *testing.T) {
		c := valid()
		assert.True(t, ValidateCandidate(&c))
	})

	t.Run("nil candidate", func(t *testing.T) {
		assert.False(t, ValidateCandidate(nil))
	})

	mutations := []struct {
		name   string
		mutate func(*types.Candidate)
	}{
		{"missing id", func(c *types.Candidate) { c.ID = "" }},
		{"missing name", func(c *types.Candidate) { c.Name = "" }},
		{"missing email", func(c *types.Candidate) { c.Email = "" }},
		{"missing role", func(c *types.Candidate) { c.RoleApplied = "" }},
		{"zero applied date", func(c *types.Candidate) { c.AppliedDate = time.Time{} }},
		{"invalid status", func(c *types.Candidate) { c.Status = "Ghosted" }},
		{"score out of range", func(c *types.Candidate) { c.AIFitScore = 250 }},
		{"NaN score", func(c *types.Candidate) { c.AIFitScore = math.NaN() }},
	}

	for _, tt := range mutations {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(&c)
			assert.False(t, ValidateCandidate(&c))
		})
	}
}
