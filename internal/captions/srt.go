package captions

import (
	"regexp"
	"strings"
)

// SRT structure: a numeric cue index line, a time-range line, then one or
// more text lines, blocks separated by blank lines. Both \n and \r\n line
// endings appear in downloaded payloads.
var (
	// cueHeaderPattern matches a cue index line together with its time-range
	// line, e.g. "12\n00:00:01,000 --> 00:00:02,000\n".
	cueHeaderPattern = regexp.MustCompile(`(?m)^\d+\r?\n\d{2}:\d{2}:\d{2},\d{3} --> \d{2}:\d{2}:\d{2},\d{3}[^\r\n]*\r?\n`)

	// markupPattern matches inline subtitle markup such as <i> or <font ...>.
	markupPattern = regexp.MustCompile(`<[^>]*>`)

	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// NormalizeSRT converts a raw SRT payload into plain prose: cue headers and
// inline markup are removed and line breaks collapse into single spaces.
// It is total and idempotent — empty input yields an empty string, and
// already-normalized prose passes through unchanged.
func NormalizeSRT(raw string) string {
	text := cueHeaderPattern.ReplaceAllString(raw, "")
	text = markupPattern.ReplaceAllString(text, "")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
