package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/giovannironzino/youtube-transcriber/internal/analysis"
	"github.com/giovannironzino/youtube-transcriber/internal/captions"
	"github.com/giovannironzino/youtube-transcriber/internal/config"
	"github.com/giovannironzino/youtube-transcriber/internal/store"
)

type fakeCaptionSource struct {
	tracks  []captions.CaptionTrack
	payload string
	listErr error
}

func (f *fakeCaptionSource) List(ctx context.Context, videoID string) ([]captions.CaptionTrack, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.tracks, nil
}

func (f *fakeCaptionSource) Download(ctx context.Context, trackID string) (string, error) {
	return f.payload, nil
}

type fakeGenerator struct {
	response string
	err      error
}

func (f *fakeGenerator) GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

const sectionResponse = `{"identificacao": {"mensagemCentralExplicita": "x"}, "avaliacao": {"inferencias": ["y"]}}`

const sampleSRT = "1\n00:00:00,000 --> 00:00:02,000\nHello world\n"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	src := &fakeCaptionSource{
		tracks:  []captions.CaptionTrack{{ID: "t1", Language: "pt-BR"}},
		payload: sampleSRT,
	}
	resolver := captions.NewResolver(src, "pt", "en")
	orch := analysis.NewOrchestrator(&fakeGenerator{response: sectionResponse})
	return New(&config.Config{}, resolver, orch, store.NewMemoryStore())
}

func serve(s *Server, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	s.Routes().ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v\nbody: %s", err, rr.Body.String())
	}
	return body
}

func requireErrorBody(t *testing.T, rr *httptest.ResponseRecorder) {
	t.Helper()
	body := decodeBody(t, rr)
	msg, ok := body["error"].(string)
	if !ok || msg == "" {
		t.Fatalf("expected a non-empty error message, got %s", rr.Body.String())
	}
}

func TestHealth(t *testing.T) {
	rr := serve(newTestServer(t), httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("health returned %d", rr.Code)
	}
}

func TestTranscriptMissingParam(t *testing.T) {
	rr := serve(newTestServer(t), httptest.NewRequest(http.MethodGet, "/transcript", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	requireErrorBody(t, rr)
}

func TestTranscriptInvalidURL(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/transcript?videoUrl=https%3A%2F%2Fexample.com%2Fnope", nil)
	rr := serve(newTestServer(t), req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	requireErrorBody(t, rr)
}

func TestTranscriptNoCaptions(t *testing.T) {
	s := newTestServer(t)
	s.resolver = captions.NewResolver(&fakeCaptionSource{}, "pt", "en")
	req := httptest.NewRequest(http.MethodGet, "/transcript?videoUrl=https%3A%2F%2Fyoutu.be%2FdQw4w9WgXcQ", nil)
	rr := serve(s, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	requireErrorBody(t, rr)
}

func TestTranscriptUnconfigured(t *testing.T) {
	s := newTestServer(t)
	s.resolver = nil
	req := httptest.NewRequest(http.MethodGet, "/transcript?videoUrl=https%3A%2F%2Fyoutu.be%2FdQw4w9WgXcQ", nil)
	rr := serve(s, req)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	requireErrorBody(t, rr)
}

func TestTranscriptHappyPath(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/transcript?videoUrl=https%3A%2F%2Fyoutu.be%2FdQw4w9WgXcQ", nil)
	rr := serve(newTestServer(t), req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	if body["transcription"] != "Hello world" {
		t.Fatalf("unexpected transcription: %q", body["transcription"])
	}
}

func TestAnalyzeMissingTranscription(t *testing.T) {
	payload := `{"simulatedVideoData": {"title": "no transcript here"}}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(payload))
	rr := serve(newTestServer(t), req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	requireErrorBody(t, rr)
}

func TestAnalyzeHappyPath(t *testing.T) {
	payload := `{"simulatedVideoData": {"transcription": "some speech"}}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(payload))
	rr := serve(newTestServer(t), req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	data, ok := body["reportData"].(map[string]any)
	if !ok {
		t.Fatalf("missing reportData: %s", rr.Body.String())
	}
	for n := 1; n <= analysis.SectionCount; n++ {
		key := fmt.Sprintf("secao%d", n)
		if _, ok := data[key]; !ok {
			t.Errorf("reportData missing %s", key)
		}
	}
}

func TestAnalyzeGenerationFailure(t *testing.T) {
	s := newTestServer(t)
	s.orchestrator = analysis.NewOrchestrator(&fakeGenerator{err: fmt.Errorf("model unavailable")})
	payload := `{"simulatedVideoData": {"transcription": "some speech"}}`
	rr := serve(s, httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(payload)))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rr.Code)
	}
	requireErrorBody(t, rr)
}

func TestReportCreateAndFetch(t *testing.T) {
	s := newTestServer(t)

	payload := `{"videoUrl": "https://youtu.be/dQw4w9WgXcQ", "userId": "u1"}`
	rr := serve(s, httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(payload)))
	if rr.Code != http.StatusOK {
		t.Fatalf("create returned %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	reportID, ok := body["reportId"].(string)
	if !ok || reportID == "" {
		t.Fatalf("missing reportId: %s", rr.Body.String())
	}

	rr = serve(s, httptest.NewRequest(http.MethodGet, "/reports/"+reportID+"?userId=u1", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("fetch returned %d: %s", rr.Code, rr.Body.String())
	}
	fetched := decodeBody(t, rr)
	if fetched["videoUrl"] != "https://youtu.be/dQw4w9WgXcQ" {
		t.Fatalf("unexpected videoUrl: %q", fetched["videoUrl"])
	}
	if fetched["transcription"] != "Hello world" {
		t.Fatalf("unexpected transcription: %q", fetched["transcription"])
	}
	if _, ok := fetched["reportData"].(map[string]any); !ok {
		t.Fatalf("fetched report has no reportData: %s", rr.Body.String())
	}

	// Another user must not see the report.
	rr = serve(s, httptest.NewRequest(http.MethodGet, "/reports/"+reportID+"?userId=u2", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign user, got %d", rr.Code)
	}
}

func TestReportList(t *testing.T) {
	s := newTestServer(t)
	for _, url := range []string{"https://youtu.be/dQw4w9WgXcQ", "https://youtu.be/abcdefghijk"} {
		payload := fmt.Sprintf(`{"videoUrl": %q, "userId": "u1"}`, url)
		rr := serve(s, httptest.NewRequest(http.MethodPost, "/reports", strings.NewReader(payload)))
		if rr.Code != http.StatusOK {
			t.Fatalf("create returned %d: %s", rr.Code, rr.Body.String())
		}
	}

	rr := serve(s, httptest.NewRequest(http.MethodGet, "/reports?userId=u1", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("list returned %d: %s", rr.Code, rr.Body.String())
	}
	body := decodeBody(t, rr)
	reports, ok := body["reports"].([]any)
	if !ok {
		t.Fatalf("missing reports array: %s", rr.Body.String())
	}
	if len(reports) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(reports))
	}
}

func TestReportNotFound(t *testing.T) {
	rr := serve(newTestServer(t), httptest.NewRequest(http.MethodGet, "/reports/does-not-exist", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	requireErrorBody(t, rr)
}

func TestUnknownPath(t *testing.T) {
	rr := serve(newTestServer(t), httptest.NewRequest(http.MethodGet, "/nope", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
	requireErrorBody(t, rr)
}
