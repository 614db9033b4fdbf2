package analysis

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/genai"
)

// Gemini model IDs. Flash balances latency and quality for per-section
// analysis calls; override via the GEMINI_MODEL environment variable.
const (
	ModelGemini25Pro   = "gemini-2.5-pro"
	ModelGemini25Flash = "gemini-2.5-flash"

	// DefaultModelName is the Gemini model used when none is configured.
	DefaultModelName = ModelGemini25Flash
)

// GetModelName resolves the Gemini model to use: the GEMINI_MODEL
// environment variable if set, otherwise DefaultModelName.
func GetModelName() string {
	if env := os.Getenv("GEMINI_MODEL"); env != "" {
		return env
	}
	return DefaultModelName
}

// NewGeminiClient creates a Gemini API client authenticated with apiKey.
func NewGeminiClient(ctx context.Context, apiKey string) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create Gemini client: %w", err)
	}
	return client, nil
}

// GeminiGenerator implements TextGenerator over the Gemini API using
// structured output: the response MIME type is pinned to JSON and the
// section schema travels with the request.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// Compile-time interface check.
var _ TextGenerator = (*GeminiGenerator)(nil)

// NewGeminiGenerator creates a GeminiGenerator for the given model.
func NewGeminiGenerator(client *genai.Client, model string) *GeminiGenerator {
	if model == "" {
		model = GetModelName()
	}
	return &GeminiGenerator{client: client, model: model}
}

// GenerateJSON sends a structured-generation request and returns the raw
// response text, expected to be a JSON document conforming to schema.
func (g *GeminiGenerator) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	config := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   schema,
	}
	contents := []*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: prompt}}}}

	start := time.Now()
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 {
		return "", fmt.Errorf("received empty response from Gemini API")
	}

	text := resp.Text()
	if text == "" {
		return "", fmt.Errorf("received empty response from Gemini API")
	}

	log.Debug().
		Str("model", g.model).
		Int("response_length", len(text)).
		Dur("elapsed", time.Since(start)).
		Msg("Gemini structured response received")
	return text, nil
}
