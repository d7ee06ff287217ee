// Package analysis - util.go provides shared utilities for webhook response processing.
package analysis

import (
	"regexp"
	"strings"
)

// fenceRe matches a triple-backtick marker with an optional language tag.
var fenceRe = regexp.MustCompile("```[a-zA-Z0-9]*")

// CleanFences removes markdown code fence markers from text.
// LLMs often wrap JSON in ```json ... ``` blocks even when instructed not to,
// and workflow tools sometimes interleave fenced fragments with prose.
func CleanFences(text string) string {
	return strings.TrimSpace(fenceRe.ReplaceAllString(text, ""))
}

// jsonFragment returns the greedy brace-delimited substring of text, from the
// leftmost "{" to the rightmost "}". Returns "" when no such fragment exists.
func jsonFragment(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return ""
	}
	return text[start : end+1]
}
