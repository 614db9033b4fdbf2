package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/giovannironzino/youtube-transcriber/internal/metrics"
)

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (sr *statusRecorder) WriteHeader(code int) {
	sr.status = code
	sr.ResponseWriter.WriteHeader(code)
}

// WithLogging logs one line per request with method, path, status and
// duration.
func WithLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("Request handled")
	})
}

// WithCORS allows the browser frontend to call the API from any origin.
func WithCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// WithMetrics emits one EMF record per request with latency and an error
// count, dimensioned by a low-cardinality endpoint name.
func WithMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		m := metrics.New("VideoAnalyzer")
		m.Dimension("Endpoint", normalizeEndpoint(r.URL.Path))
		m.Metric("RequestLatencyMs", float64(time.Since(start).Milliseconds()), metrics.UnitMilliseconds)
		m.Count("RequestCount")
		if rec.status >= 500 {
			m.Count("RequestErrors")
		}
		m.Property("Method", r.Method)
		m.Property("Status", rec.status)
		m.Flush()
	})
}

// normalizeEndpoint collapses per-report paths so report IDs do not explode
// the metric dimension space.
func normalizeEndpoint(path string) string {
	if strings.HasPrefix(path, "/reports/") {
		return "/reports/{id}"
	}
	return path
}
