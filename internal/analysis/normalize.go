// Package analysis turns the workflow webhook's unpredictable replies into
// stable AnalysisResult records and hosts the client that requests them.
package analysis

import (
	"encoding/json"
	"fmt"

	"github.com/jonathan/recruit-ai/internal/types"
)

// neutralScore is assigned whenever the upstream reply carries no usable
// numeric score. It lands in the moderate band so the candidate surfaces
// for manual review instead of being silently buried.
const neutralScore = 50

// interviewThreshold decides the default recommendation when the upstream
// reply has a score but no explicit recommendation.
const interviewThreshold = 70

// NormalizeBytes decodes a raw webhook response body and normalizes it.
// Bodies that are not JSON at all are treated as plain-text analysis content.
func NormalizeBytes(body []byte, candidateName string) types.AnalysisResult {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return Normalize(string(body), candidateName)
	}
	return Normalize(decoded, candidateName)
}

// Normalize converts an arbitrary decoded webhook payload into an
// AnalysisResult. The upstream shape is not contractually fixed: it may be a
// hosted-LLM API envelope, a pre-parsed result object, an array wrapping one
// of those, plain text, or text with a fenced JSON fragment buried in prose.
// Normalize never fails; every path degrades to a reviewable result.
func Normalize(raw any, candidateName string) (result types.AnalysisResult) {
	defer func() {
		if r := recover(); r != nil {
			result = parseFailureResult(candidateName)
		}
	}()

	// A single-element array wrapper is common for workflow tool output.
	if arr, ok := raw.([]any); ok {
		if len(arr) == 0 {
			return placeholderResult(candidateName)
		}
		raw = arr[0]
	}

	// Already-structured result: the workflow parsed the model output for us.
	if obj, ok := raw.(map[string]any); ok {
		if score, ok := numericField(obj, "score"); ok {
			return structuredResult(obj, score)
		}
	}

	content := locateContent(raw)
	if content == "" {
		return placeholderResult(candidateName)
	}

	return resultFromText(content)
}

// locateContent probes the known payload shapes, in order, for free-text
// content. First non-empty match wins.
func locateContent(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}

	obj, ok := raw.(map[string]any)
	if !ok {
		return ""
	}

	// Hosted-LLM envelope: candidates[0].content.parts[0].text
	if candidates, ok := obj["candidates"].([]any); ok && len(candidates) > 0 {
		if first, ok := candidates[0].(map[string]any); ok {
			if text := partText(first["content"]); text != "" {
				return text
			}
		}
	}

	if text, ok := obj["text"].(string); ok && text != "" {
		return text
	}

	if text := partText(obj["content"]); text != "" {
		return text
	}

	if text, ok := obj["output"].(string); ok && text != "" {
		return text
	}

	return ""
}

// partText extracts content.parts[0].text from a nested content object.
func partText(content any) string {
	obj, ok := content.(map[string]any)
	if !ok {
		return ""
	}
	parts, ok := obj["parts"].([]any)
	if !ok || len(parts) == 0 {
		return ""
	}
	part, ok := parts[0].(map[string]any)
	if !ok {
		return ""
	}
	text, _ := part["text"].(string)
	return text
}

// structuredResult reads a payload that already carries a numeric score.
func structuredResult(obj map[string]any, score float64) types.AnalysisResult {
	analysis, _ := obj["analysis"].(string)
	return types.AnalysisResult{
		Score:          score,
		Analysis:       analysis,
		Strengths:      stringSlice(obj["strengths"]),
		Weaknesses:     stringSlice(obj["weaknesses"]),
		Recommendation: normalizeRecommendation(obj["recommendation"], types.RecommendReview),
	}
}

// resultFromText strips code fences from free-text content, then tries to
// parse an embedded brace-delimited JSON fragment. Without one, the cleaned
// text itself becomes the analysis.
func resultFromText(content string) types.AnalysisResult {
	cleaned := CleanFences(content)

	textOnly := types.AnalysisResult{
		Score:          neutralScore,
		Analysis:       cleaned,
		Strengths:      []string{},
		Weaknesses:     []string{},
		Recommendation: types.RecommendReview,
	}

	fragment := jsonFragment(cleaned)
	if fragment == "" {
		return textOnly
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(fragment), &parsed); err != nil {
		return textOnly
	}

	score, ok := numericField(parsed, "score")
	if !ok {
		score = neutralScore
	}

	analysis, ok := parsed["analysis"].(string)
	if !ok || analysis == "" {
		analysis = cleaned
	}

	fallback := types.RecommendReview
	if score > interviewThreshold {
		fallback = types.RecommendInterview
	}

	return types.AnalysisResult{
		Score:          score,
		Analysis:       analysis,
		Strengths:      stringSlice(parsed["strengths"]),
		Weaknesses:     stringSlice(parsed["weaknesses"]),
		Recommendation: normalizeRecommendation(parsed["recommendation"], fallback),
	}
}

// placeholderResult is returned when no content could be located at all.
func placeholderResult(candidateName string) types.AnalysisResult {
	return types.AnalysisResult{
		Score:          neutralScore,
		Analysis:       fmt.Sprintf("Analysis completed for %s. Please review the candidate manually.", candidateName),
		Strengths:      []string{},
		Weaknesses:     []string{},
		Recommendation: types.RecommendReview,
	}
}

// parseFailureResult is returned when normalization itself blew up.
func parseFailureResult(candidateName string) types.AnalysisResult {
	return types.AnalysisResult{
		Score:          neutralScore,
		Analysis:       fmt.Sprintf("Unable to parse AI analysis for %s. Please review manually.", candidateName),
		Strengths:      []string{},
		Weaknesses:     []string{},
		Recommendation: types.RecommendReview,
	}
}

// numericField reads a JSON number field. JSON numbers decode to float64.
func numericField(obj map[string]any, key string) (float64, bool) {
	v, ok := obj[key].(float64)
	return v, ok
}

// stringSlice coerces a decoded JSON value into a string slice. Non-array
// values and non-string elements are discarded.
func stringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// normalizeRecommendation keeps the recommendation inside the known
// tri-state enum, falling back when it is missing or unrecognized.
func normalizeRecommendation(v any, fallback types.Recommendation) types.Recommendation {
	s, _ := v.(string)
	switch types.Recommendation(s) {
	case types.RecommendInterview, types.RecommendReject, types.RecommendReview:
		return types.Recommendation(s)
	default:
		return fallback
	}
}
