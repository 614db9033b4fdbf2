package analysis

import (
	"time"
)

// Report is the aggregate of all eight section results for one video. A
// report exists only when every section succeeded; partial reports are never
// constructed or persisted.
type Report struct {
	// ID and UserID are assigned by the persistence layer.
	ID     string
	UserID string

	VideoURL  string
	Sections  map[int]*SectionResult
	CreatedAt time.Time

	// Transcription optionally carries the analyzed transcript so a stored
	// report can be re-displayed without re-fetching captions.
	Transcription string
}

// Aggregate assembles the final report from the per-section results: it
// stamps the creation time and attaches the source URL. Pure shape assembly,
// no business logic.
func Aggregate(videoURL string, sections map[int]*SectionResult) *Report {
	return &Report{
		VideoURL:  videoURL,
		Sections:  sections,
		CreatedAt: time.Now().UTC(),
	}
}

// ReportData returns the wire-shape mapping ("secao1".."secao8") consumed by
// the frontend and stored verbatim.
func (r *Report) ReportData() map[string]*SectionResult {
	out := make(map[string]*SectionResult, len(r.Sections))
	for n, res := range r.Sections {
		out[SectionKey(n)] = res
	}
	return out
}

// SectionsFromReportData converts the wire-shape mapping back into the
// section-number keyed form. Unrecognized keys are ignored.
func SectionsFromReportData(data map[string]*SectionResult) map[int]*SectionResult {
	out := make(map[int]*SectionResult, len(data))
	for n := 1; n <= SectionCount; n++ {
		if res, ok := data[SectionKey(n)]; ok {
			out[n] = res
		}
	}
	return out
}
