package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanFences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"json fence", "```json\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"bare fence", "```\n{\"a\": 1}\n```", "{\"a\": 1}"},
		{"language tag", "```javascript\ncode\n```", "code"},
		{"no fences", "{\"a\": 1}", "{\"a\": 1}"},
		{"fence mid-prose", "Here: ```json\n{\"a\": 1}\n``` done", "{\"a\": 1}\n done"},
		{"empty", "", ""},
		{"whitespace trimmed", "  \n text \n ", "text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanFences(tt.input))
		})
	}
}

func TestJSONFragment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare object", `{"a": 1}`, `{"a": 1}`},
		{"object in prose", `verdict: {"a": 1} thanks`, `{"a": 1}`},
		{"greedy across nested objects", `{"a": {"b": 2}} trailing {"c": 3}`, `{"a": {"b": 2}} trailing {"c": 3}`},
		{"no braces", "nothing here", ""},
		{"only open brace", "just a { stray", ""},
		{"close before open", "} backwards {", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, jsonFragment(tt.input))
		})
	}
}
