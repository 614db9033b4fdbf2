package store

import (
	"context"
	"sort"
	"sync"

	"github.com/giovannironzino/youtube-transcriber/internal/analysis"
)

// MemoryStore is a mutex-guarded in-memory ReportStore for local runs of the
// web server where no DynamoDB table is configured. Reports do not survive a
// restart.
type MemoryStore struct {
	mu      sync.Mutex
	reports map[string]map[string]*analysis.Report // userID -> reportID -> report
}

// Compile-time interface check.
var _ ReportStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{reports: make(map[string]map[string]*analysis.Report)}
}

// PutReport stores a copy of the report under the user scope.
func (s *MemoryStore) PutReport(ctx context.Context, userID string, r *analysis.Report) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.reports[userID] == nil {
		s.reports[userID] = make(map[string]*analysis.Report)
	}
	cp := *r
	s.reports[userID][r.ID] = &cp
	return nil
}

// GetReport retrieves one report. Returns nil, nil if not found.
func (s *MemoryStore) GetReport(ctx context.Context, userID, reportID string) (*analysis.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reports[userID][reportID]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

// ListReports returns all report summaries for a user, newest first.
func (s *MemoryStore) ListReports(ctx context.Context, userID string) ([]ReportSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := make([]ReportSummary, 0, len(s.reports[userID]))
	for _, r := range s.reports[userID] {
		summaries = append(summaries, ReportSummary{
			ID:        r.ID,
			VideoURL:  r.VideoURL,
			CreatedAt: r.CreatedAt,
		})
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}
