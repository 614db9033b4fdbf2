// Package jsonutil parses JSON documents out of model responses. Even with a
// pinned JSON response type, generation output occasionally arrives wrapped
// in markdown code fences or surrounded by prose; these helpers recover the
// document before unmarshalling.
package jsonutil

import (
	"encoding/json"
	"fmt"
	"strings"
)

// StripFences removes a ```json ... ``` (or bare ```) wrapper from text.
// Text without a leading fence is returned unchanged.
func StripFences(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) < 3 {
		return text
	}

	end := len(lines) - 1
	for i := len(lines) - 1; i > 0; i-- {
		if strings.TrimSpace(lines[i]) == "```" {
			end = i
			break
		}
	}
	return strings.Join(lines[1:end], "\n")
}

// Extract returns the JSON object or array embedded in text, delimited by
// the first opening brace/bracket and the last matching closing one.
func Extract(text string) (string, error) {
	text = strings.TrimSpace(text)

	start := strings.IndexAny(text, "{[")
	if start < 0 {
		return "", fmt.Errorf("no JSON content found")
	}

	closing := "}"
	if text[start] == '[' {
		closing = "]"
	}

	text = text[start:]
	end := strings.LastIndex(text, closing)
	if end < 0 {
		return "", fmt.Errorf("no closing %s found", closing)
	}
	return text[:end+1], nil
}

// Parse strips fences from a raw model response, extracts the embedded JSON
// document, and unmarshals it into T.
func Parse[T any](raw string) (T, error) {
	var zero T

	text, err := Extract(StripFences(raw))
	if err != nil {
		return zero, fmt.Errorf("%w (response length: %d)", err, len(raw))
	}

	var result T
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		preview := text
		if len(preview) > 200 {
			preview = preview[:200] + "..."
		}
		return zero, fmt.Errorf("invalid JSON: %w (text: %s)", err, preview)
	}
	return result, nil
}
