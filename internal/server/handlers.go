package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/giovannironzino/youtube-transcriber/internal/analysis"
	"github.com/giovannironzino/youtube-transcriber/internal/captions"
	"github.com/giovannironzino/youtube-transcriber/internal/videoid"
)

// defaultUserID scopes reports when the caller does not identify a user.
const defaultUserID = "anonymous"

// reportPayload is the JSON wire shape of a stored report.
type reportPayload struct {
	ID            string                             `json:"id"`
	VideoURL      string                             `json:"videoUrl"`
	ReportData    map[string]*analysis.SectionResult `json:"reportData"`
	Transcription string                             `json:"transcription,omitempty"`
	CreatedAt     time.Time                          `json:"createdAt"`
}

func payloadFromReport(r *analysis.Report) reportPayload {
	return reportPayload{
		ID:            r.ID,
		VideoURL:      r.VideoURL,
		ReportData:    r.ReportData(),
		Transcription: r.Transcription,
		CreatedAt:     r.CreatedAt,
	}
}

// --- GET /transcript ---

func (s *Server) handleTranscript(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	videoURL := r.URL.Query().Get("videoUrl")
	if videoURL == "" {
		httpError(w, http.StatusBadRequest, "the videoUrl query parameter is required")
		return
	}

	videoID, err := videoid.Extract(videoURL)
	if err != nil {
		httpError(w, http.StatusBadRequest, "invalid or unrecognized YouTube URL")
		return
	}

	if s.resolver == nil {
		log.Error().Msg("YouTube API key not configured on the server")
		httpError(w, http.StatusInternalServerError, "server configuration error")
		return
	}

	transcript, err := s.resolver.Resolve(r.Context(), videoID)
	if err != nil {
		s.respondResolveError(w, videoID, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"transcription": transcript})
}

func (s *Server) respondResolveError(w http.ResponseWriter, videoID string, err error) {
	if errors.Is(err, captions.ErrNoCaptions) {
		httpError(w, http.StatusNotFound, "no captions found for this video")
		return
	}
	log.Error().Err(err).Str("videoId", videoID).Msg("Transcript resolution failed")
	httpErrorDetails(w, http.StatusInternalServerError, "failed to fetch the video transcript", err.Error())
}

// --- POST /analyze ---

type analyzeRequest struct {
	SimulatedVideoData *analysis.Input `json:"simulatedVideoData"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.SimulatedVideoData == nil || req.SimulatedVideoData.Transcription == "" {
		httpError(w, http.StatusBadRequest, "analysis data (transcription) is required")
		return
	}

	if s.orchestrator == nil {
		log.Error().Msg("Gemini API key not configured on the server")
		httpError(w, http.StatusInternalServerError, "server configuration error")
		return
	}

	sections, err := s.orchestrator.AnalyzeAll(r.Context(), *req.SimulatedVideoData)
	if err != nil {
		log.Error().Err(err).Msg("Section analysis failed")
		httpErrorDetails(w, http.StatusInternalServerError, "failed to analyze the content", err.Error())
		return
	}

	reportData := make(map[string]*analysis.SectionResult, len(sections))
	for n, res := range sections {
		reportData[analysis.SectionKey(n)] = res
	}
	respondJSON(w, http.StatusOK, map[string]any{"reportData": reportData})
}

// --- /reports ---

type createReportRequest struct {
	VideoURL string `json:"videoUrl"`
	UserID   string `json:"userId"`
}

func (s *Server) handleReports(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.handleReportCreate(w, r)
	case http.MethodGet:
		s.handleReportList(w, r)
	default:
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// handleReportCreate runs the full pipeline for one URL: transcript
// acquisition, all eight section analyses, aggregation, persistence. Any
// failure aborts the run; nothing partial is stored.
func (s *Server) handleReportCreate(w http.ResponseWriter, r *http.Request) {
	var req createReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.VideoURL == "" {
		httpError(w, http.StatusBadRequest, "videoUrl is required")
		return
	}
	userID := req.UserID
	if userID == "" {
		userID = defaultUserID
	}

	videoID, err := videoid.Extract(req.VideoURL)
	if err != nil {
		httpError(w, http.StatusBadRequest, "invalid or unrecognized YouTube URL")
		return
	}

	if s.resolver == nil || s.orchestrator == nil {
		log.Error().
			Bool("captions", s.resolver != nil).
			Bool("generation", s.orchestrator != nil).
			Msg("API credentials not configured on the server")
		httpError(w, http.StatusInternalServerError, "server configuration error")
		return
	}

	transcript, err := s.resolver.Resolve(r.Context(), videoID)
	if err != nil {
		s.respondResolveError(w, videoID, err)
		return
	}

	sections, err := s.orchestrator.AnalyzeAll(r.Context(), analysis.Input{Transcription: transcript})
	if err != nil {
		log.Error().Err(err).Str("videoId", videoID).Msg("Section analysis failed")
		httpErrorDetails(w, http.StatusInternalServerError, "failed to analyze the content", err.Error())
		return
	}

	report := analysis.Aggregate(req.VideoURL, sections)
	report.ID = uuid.NewString()
	report.UserID = userID
	report.Transcription = transcript

	if err := s.reports.PutReport(r.Context(), userID, report); err != nil {
		log.Error().Err(err).Str("reportId", report.ID).Msg("Failed to persist report")
		httpErrorDetails(w, http.StatusInternalServerError, "failed to save the report", err.Error())
		return
	}

	log.Info().
		Str("reportId", report.ID).
		Str("userId", userID).
		Str("videoId", videoID).
		Msg("Analysis report created")
	respondJSON(w, http.StatusOK, map[string]any{
		"reportId": report.ID,
		"report":   payloadFromReport(report),
	})
}

func (s *Server) handleReportList(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = defaultUserID
	}

	summaries, err := s.reports.ListReports(r.Context(), userID)
	if err != nil {
		log.Error().Err(err).Str("userId", userID).Msg("Failed to list reports")
		httpErrorDetails(w, http.StatusInternalServerError, "failed to load the report history", err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"reports": summaries})
}

// --- GET /reports/{id} ---

func (s *Server) handleReportByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httpError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	reportID := strings.TrimPrefix(r.URL.Path, "/reports/")
	if reportID == "" || strings.Contains(reportID, "/") {
		httpError(w, http.StatusNotFound, "not found")
		return
	}
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		userID = defaultUserID
	}

	report, err := s.reports.GetReport(r.Context(), userID, reportID)
	if err != nil {
		log.Error().Err(err).Str("reportId", reportID).Msg("Failed to load report")
		httpErrorDetails(w, http.StatusInternalServerError, "failed to load the report", err.Error())
		return
	}
	if report == nil {
		httpError(w, http.StatusNotFound, "report not found")
		return
	}
	respondJSON(w, http.StatusOK, payloadFromReport(report))
}
