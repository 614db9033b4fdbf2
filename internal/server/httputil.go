package server

import (
	"encoding/json"
	"net/http"
)

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// httpError writes the standard error envelope: {"error": message}.
func httpError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// httpErrorDetails writes the error envelope with a diagnostics field:
// {"error": message, "details": details}.
func httpErrorDetails(w http.ResponseWriter, status int, message, details string) {
	respondJSON(w, status, map[string]string{"error": message, "details": details})
}
