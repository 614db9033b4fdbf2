// Package server exposes the transcript and analysis pipeline over HTTP.
// The same mux serves the local web binary and the Lambda entry point.
//
// Endpoints:
//
//	GET  /                 — liveness message
//	GET  /api/health       — health check
//	GET  /transcript       — fetch and normalize a video's captions
//	POST /analyze          — run the eight-section analysis on a transcript
//	POST /reports          — full pipeline: URL -> transcript -> report -> store
//	GET  /reports          — report history for a user, newest first
//	GET  /reports/{id}     — one stored report
package server

import (
	"net/http"

	"github.com/giovannironzino/youtube-transcriber/internal/analysis"
	"github.com/giovannironzino/youtube-transcriber/internal/captions"
	"github.com/giovannironzino/youtube-transcriber/internal/config"
	"github.com/giovannironzino/youtube-transcriber/internal/store"
)

// Server wires the pipeline components behind the HTTP API. The resolver and
// orchestrator may be nil when the corresponding API credential is not
// configured; affected endpoints then report a configuration error, matching
// the missing-credential-is-a-500 contract.
type Server struct {
	cfg          *config.Config
	resolver     *captions.Resolver
	orchestrator *analysis.Orchestrator
	reports      store.ReportStore
}

// New creates a Server. Any of resolver, orchestrator may be nil; reports
// must not be.
func New(cfg *config.Config, resolver *captions.Resolver, orchestrator *analysis.Orchestrator, reports store.ReportStore) *Server {
	return &Server{
		cfg:          cfg,
		resolver:     resolver,
		orchestrator: orchestrator,
		reports:      reports,
	}
}

// Routes returns the API mux. Callers wrap it with the middleware they need
// (logging, CORS, metrics).
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleRoot)
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/transcript", s.handleTranscript)
	mux.HandleFunc("/analyze", s.handleAnalyze)
	mux.HandleFunc("/reports", s.handleReports)
	mux.HandleFunc("/reports/", s.handleReportByID)
	return mux
}

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		httpError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "Video analysis API is running."})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
