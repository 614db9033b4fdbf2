package store

import (
	"context"
	"testing"
	"time"

	"github.com/giovannironzino/youtube-transcriber/internal/analysis"
)

func sampleReport(id string, createdAt time.Time) *analysis.Report {
	sections := make(map[int]*analysis.SectionResult, analysis.SectionCount)
	for n := 1; n <= analysis.SectionCount; n++ {
		sections[n] = &analysis.SectionResult{
			Identificacao: map[string]any{"campo": "valor"},
			Avaliacao:     map[string]any{"nota": "boa"},
		}
	}
	return &analysis.Report{
		ID:            id,
		UserID:        "user-1",
		VideoURL:      "https://youtu.be/dQw4w9WgXcQ",
		Sections:      sections,
		CreatedAt:     createdAt,
		Transcription: "Oi mundo",
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	original := sampleReport("r-1", time.Now().UTC())
	if err := s.PutReport(ctx, "user-1", original); err != nil {
		t.Fatalf("PutReport: %v", err)
	}

	got, err := s.GetReport(ctx, "user-1", "r-1")
	if err != nil {
		t.Fatalf("GetReport: %v", err)
	}
	if got == nil {
		t.Fatal("report not found after put")
	}
	if got.VideoURL != original.VideoURL {
		t.Errorf("VideoURL = %q, want %q", got.VideoURL, original.VideoURL)
	}
	if !got.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, original.CreatedAt)
	}
	if len(got.Sections) != analysis.SectionCount {
		t.Errorf("got %d sections, want %d", len(got.Sections), analysis.SectionCount)
	}
	for n := 1; n <= analysis.SectionCount; n++ {
		if got.Sections[n] == nil {
			t.Errorf("section %d missing after round trip", n)
		}
	}
}

func TestMemoryStoreGetMissing(t *testing.T) {
	s := NewMemoryStore()

	got, err := s.GetReport(context.Background(), "user-1", "nope")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for missing report, got %+v", got)
	}
}

func TestMemoryStoreUserScoping(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	if err := s.PutReport(ctx, "user-1", sampleReport("r-1", time.Now().UTC())); err != nil {
		t.Fatalf("PutReport: %v", err)
	}

	got, err := s.GetReport(ctx, "user-2", "r-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Error("report leaked across user scopes")
	}
}

func TestMemoryStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()

	base := time.Now().UTC()
	for i, id := range []string{"r-old", "r-mid", "r-new"} {
		r := sampleReport(id, base.Add(time.Duration(i)*time.Minute))
		if err := s.PutReport(ctx, "user-1", r); err != nil {
			t.Fatalf("PutReport: %v", err)
		}
	}

	summaries, err := s.ListReports(ctx, "user-1")
	if err != nil {
		t.Fatalf("ListReports: %v", err)
	}
	want := []string{"r-new", "r-mid", "r-old"}
	if len(summaries) != len(want) {
		t.Fatalf("got %d summaries, want %d", len(summaries), len(want))
	}
	for i, id := range want {
		if summaries[i].ID != id {
			t.Errorf("summaries[%d].ID = %q, want %q", i, summaries[i].ID, id)
		}
	}
}
