// Package analysis runs the eight-section semiotic analysis of a video
// transcript. Each section sends a structured-generation request — a
// natural-language instruction plus a response schema — to a text-generation
// backend and validates the returned JSON. The eight results are aggregated
// into a single report keyed by section number.
package analysis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/giovannironzino/youtube-transcriber/internal/jsonutil"
)

var (
	// ErrInvalidSection marks a section number outside 1..8. This is a
	// programming-contract violation, not a user input case.
	ErrInvalidSection = errors.New("invalid section number")

	// ErrBadResponse marks a model response that could not be parsed into
	// the expected identificacao/avaliacao envelope.
	ErrBadResponse = errors.New("invalid model response")
)

// TextGenerator produces a JSON document conforming to schema in response to
// prompt. The production implementation calls the Gemini API; tests
// substitute fakes.
type TextGenerator interface {
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// Orchestrator runs section analyses against a TextGenerator.
type Orchestrator struct {
	gen TextGenerator
}

// NewOrchestrator creates an Orchestrator backed by gen.
func NewOrchestrator(gen TextGenerator) *Orchestrator {
	return &Orchestrator{gen: gen}
}

// AnalyzeSection runs a single section analysis. n must be in 1..8.
func (o *Orchestrator) AnalyzeSection(ctx context.Context, n int, in Input) (*SectionResult, error) {
	if n < 1 || n > SectionCount {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSection, n)
	}
	spec := Sections[n-1]

	prompt := spec.Prompt(in)
	log.Debug().
		Int("section", n).
		Str("title", spec.Title).
		Int("prompt_length", len(prompt)).
		Msg("Requesting section analysis")

	start := time.Now()
	raw, err := o.gen.GenerateJSON(ctx, prompt, spec.Schema)
	if err != nil {
		return nil, fmt.Errorf("section %d (%s): %w", n, spec.Title, err)
	}

	result, err := jsonutil.Parse[SectionResult](raw)
	if err != nil {
		return nil, fmt.Errorf("section %d (%s): %w: %v", n, spec.Title, ErrBadResponse, err)
	}
	if result.Identificacao == nil || result.Avaliacao == nil {
		return nil, fmt.Errorf("section %d (%s): %w: missing identificacao or avaliacao", n, spec.Title, ErrBadResponse)
	}

	log.Debug().
		Int("section", n).
		Dur("elapsed", time.Since(start)).
		Msg("Section analysis complete")
	return &result, nil
}

// AnalyzeAll runs sections 1..8 in order, failing fast on the first error.
// On success the returned map has exactly one entry per section; on failure
// no partial map is returned.
func (o *Orchestrator) AnalyzeAll(ctx context.Context, in Input) (map[int]*SectionResult, error) {
	results := make(map[int]*SectionResult, SectionCount)
	for _, spec := range Sections {
		res, err := o.AnalyzeSection(ctx, spec.ID, in)
		if err != nil {
			return nil, err
		}
		results[spec.ID] = res
	}
	return results, nil
}
