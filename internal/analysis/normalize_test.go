package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/recruit-ai/internal/types"
)

func TestNormalizeStructuredRoundTrip(t *testing.T) {
	payload := map[string]any{
		"score":          float64(73),
		"analysis":       "ok",
		"strengths":      []any{"a"},
		"weaknesses":     []any{},
		"recommendation": "interview",
	}

	result := Normalize(payload, "Jane Doe")

	assert.Equal(t, float64(73), result.Score)
	assert.Equal(t, "ok", result.Analysis)
	assert.Equal(t, []string{"a"}, result.Strengths)
	assert.Equal(t, []string{}, result.Weaknesses)
	assert.Equal(t, types.RecommendInterview, result.Recommendation)
}

func TestNormalizeGeminiEnvelope(t *testing.T) {
	fenced := "```json\n{\"score\": 88, \"analysis\": \"Great fit\"}\n```"
	payload := map[string]any{
		"candidates": []any{
			map[string]any{
				"content": map[string]any{
					"parts": []any{map[string]any{"text": fenced}},
				},
			},
		},
	}

	result := Normalize(payload, "Jane Doe")

	assert.Equal(t, float64(88), result.Score)
	assert.Equal(t, "Great fit", result.Analysis)
	assert.Equal(t, types.RecommendInterview, result.Recommendation)
}

func TestNormalizeTextShapes(t *testing.T) {
	tests := []struct {
		name     string
		payload  any
		score    float64
		analysis string
		rec      types.Recommendation
	}{
		{
			name:     "output field without JSON fragment",
			payload:  map[string]any{"output": "no structured data here"},
			score:    50,
			analysis: "no structured data here",
			rec:      types.RecommendReview,
		},
		{
			name:     "direct text field without JSON fragment",
			payload:  map[string]any{"text": "free-form commentary"},
			score:    50,
			analysis: "free-form commentary",
			rec:      types.RecommendReview,
		},
		{
			name:     "plain string payload",
			payload:  "resume looked fine",
			score:    50,
			analysis: "resume looked fine",
			rec:      types.RecommendReview,
		},
		{
			name:     "JSON fragment interleaved with prose",
			payload:  map[string]any{"text": `The verdict follows. {"score": 91, "analysis": "Exceptional"} Thanks!`},
			score:    91,
			analysis: "Exceptional",
			rec:      types.RecommendInterview,
		},
		{
			name:     "embedded JSON score at threshold defaults to review",
			payload:  map[string]any{"text": `{"score": 70, "analysis": "Decent"}`},
			score:    70,
			analysis: "Decent",
			rec:      types.RecommendReview,
		},
		{
			name:     "embedded JSON without score defaults to neutral",
			payload:  map[string]any{"text": `{"analysis": "No score given"}`},
			score:    50,
			analysis: "No score given",
			rec:      types.RecommendReview,
		},
		{
			name:     "nested content parts",
			payload:  map[string]any{"content": map[string]any{"parts": []any{map[string]any{"text": `{"score": 40, "analysis": "Weak overlap"}`}}}},
			score:    40,
			analysis: "Weak overlap",
			rec:      types.RecommendReview,
		},
		{
			name:     "unbalanced braces fall back to cleaned text",
			payload:  map[string]any{"output": "just a { stray brace"},
			score:    50,
			analysis: "just a { stray brace",
			rec:      types.RecommendReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.payload, "Jane Doe")
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.analysis, result.Analysis)
			assert.Equal(t, tt.rec, result.Recommendation)
		})
	}
}

func TestNormalizeArrayUnwrap(t *testing.T) {
	payload := []any{
		map[string]any{"score": float64(62), "analysis": "second opinion ignored"},
		map[string]any{"score": float64(99)},
	}

	result := Normalize(payload, "Jane Doe")
	assert.Equal(t, float64(62), result.Score)
}

func TestNormalizePlaceholder(t *testing.T) {
	tests := []struct {
		name    string
		payload any
	}{
		{"empty object", map[string]any{}},
		{"nil payload", nil},
		{"empty array", []any{}},
		{"unrecognized fields", map[string]any{"verdict": "hire", "confidence": "high"}},
		{"numeric payload", float64(42)},
		{"empty text field", map[string]any{"text": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Normalize(tt.payload, "Jane Doe")
			assert.Equal(t, float64(50), result.Score)
			assert.Contains(t, result.Analysis, "Jane Doe")
			assert.Equal(t, []string{}, result.Strengths)
			assert.Equal(t, []string{}, result.Weaknesses)
			assert.Equal(t, types.RecommendReview, result.Recommendation)
		})
	}
}

func TestNormalizeNeverPanicsAndAlwaysWellFormed(t *testing.T) {
	payloads := []any{
		nil,
		"plain text",
		float64(3.14),
		true,
		[]any{nil},
		[]any{[]any{[]any{}}},
		map[string]any{"candidates": "not an array"},
		map[string]any{"candidates": []any{"not an object"}},
		map[string]any{"candidates": []any{map[string]any{"content": "not an object"}}},
		map[string]any{"content": map[string]any{"parts": []any{}}},
		map[string]any{"content": map[string]any{"parts": []any{float64(1)}}},
		map[string]any{"score": "not numeric", "text": "fallback content"},
		map[string]any{"strengths": map[string]any{"oops": true}, "score": float64(10)},
		map[string]any{"text": "```python\nprint('hi')\n```"},
	}

	for _, payload := range payloads {
		result := Normalize(payload, "Jane Doe")
		assert.NotEmpty(t, result.Analysis)
		assert.NotNil(t, result.Strengths)
		assert.NotNil(t, result.Weaknesses)
		assert.Contains(t, []types.Recommendation{
			types.RecommendInterview, types.RecommendReject, types.RecommendReview,
		}, result.Recommendation)
	}
}

func TestNormalizeStructuredDefaults(t *testing.T) {
	result := Normalize(map[string]any{"score": float64(81)}, "Jane Doe")

	assert.Equal(t, float64(81), result.Score)
	assert.Equal(t, "", result.Analysis)
	assert.Equal(t, []string{}, result.Strengths)
	assert.Equal(t, []string{}, result.Weaknesses)
	assert.Equal(t, types.RecommendReview, result.Recommendation)
}

func TestNormalizeStructuredDiscardsNonArrayLists(t *testing.T) {
	result := Normalize(map[string]any{
		"score":      float64(55),
		"strengths":  "strong communicator",
		"weaknesses": map[string]any{"a": 1},
	}, "Jane Doe")

	assert.Equal(t, []string{}, result.Strengths)
	assert.Equal(t, []string{}, result.Weaknesses)
}

func TestNormalizeUnknownRecommendationCoerced(t *testing.T) {
	result := Normalize(map[string]any{
		"score":          float64(90),
		"recommendation": "hire immediately",
	}, "Jane Doe")

	assert.Equal(t, types.RecommendReview, result.Recommendation)
}

func TestNormalizeBytes(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		score    float64
		analysis string
	}{
		{
			name:     "structured JSON body",
			body:     `{"score": 77, "analysis": "solid"}`,
			score:    77,
			analysis: "solid",
		},
		{
			name:     "array-wrapped body",
			body:     `[{"score": 64, "analysis": "fine"}]`,
			score:    64,
			analysis: "fine",
		},
		{
			name:     "non-JSON body treated as text",
			body:     "The model thought this resume was adequate.",
			score:    50,
			analysis: "The model thought this resume was adequate.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeBytes([]byte(tt.body), "Jane Doe")
			assert.Equal(t, tt.score, result.Score)
			assert.Equal(t, tt.analysis, result.Analysis)
		})
	}

	t.Run("empty body yields placeholder", func(t *testing.T) {
		result := NormalizeBytes(nil, "Jane Doe")
		assert.Equal(t, float64(50), result.Score)
		assert.Contains(t, result.Analysis, "Jane Doe")
	})
}
