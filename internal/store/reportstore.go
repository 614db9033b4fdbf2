// Package store persists completed analysis reports. Reports are scoped per
// user, keyed by an opaque report ID, and listable newest-first for history
// display.
//
// The production implementation is DynamoDB-backed with a single-table
// design: all records for a user share a partition key (USER#{userID}) and
// reports use REPORT#{reportID} sort keys. MemoryStore backs local runs of
// the web server where no table is configured.
package store

import (
	"context"
	"time"

	"github.com/giovannironzino/youtube-transcriber/internal/analysis"
)

// ReportSummary is the lightweight listing entry for report history.
type ReportSummary struct {
	ID        string    `json:"id"`
	VideoURL  string    `json:"videoUrl"`
	CreatedAt time.Time `json:"createdAt"`
}

// ReportStore is the persistence interface for analysis reports. Each method
// is safe for concurrent use. GetReport returns (nil, nil) when the report
// does not exist; PutReport performs full-item replacement.
type ReportStore interface {
	// PutReport stores a completed report under the given user scope. The
	// report's ID and UserID fields must be set by the caller.
	PutReport(ctx context.Context, userID string, r *analysis.Report) error

	// GetReport retrieves one report. Returns nil, nil if not found.
	GetReport(ctx context.Context, userID, reportID string) (*analysis.Report, error)

	// ListReports returns all report summaries for a user, sorted by
	// creation time descending.
	ListReports(ctx context.Context, userID string) ([]ReportSummary, error)
}
