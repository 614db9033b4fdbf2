// Package config reads process configuration once at startup into an
// explicit struct, passed by reference into each component constructor.
// Nothing else in the codebase reads configuration environment variables ad
// hoc, so missing-credential failures are deterministic and testable.
package config

import (
	"os"
	"strconv"
)

// Default values for optional settings.
const (
	DefaultPort         = 10000
	DefaultPrimaryLang  = "pt"
	DefaultFallbackLang = "en"
)

// Config holds all process configuration. Missing API credentials do not
// prevent startup; the affected endpoints report a configuration error on
// first use instead.
type Config struct {
	// YouTubeAPIKey authenticates caption listing and download calls.
	YouTubeAPIKey string

	// GeminiAPIKey authenticates text-generation calls.
	GeminiAPIKey string

	// GeminiModel overrides the default generation model when set.
	GeminiModel string

	// Port is the HTTP listen port for the web server.
	Port int

	// ReportsTable is the DynamoDB table for persisted reports. Empty means
	// the in-memory store is used.
	ReportsTable string

	// PrimaryLang and FallbackLang are the caption language preference
	// prefixes.
	PrimaryLang  string
	FallbackLang string
}

// FromEnv builds a Config from environment variables.
func FromEnv() *Config {
	cfg := &Config{
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   os.Getenv("GEMINI_MODEL"),
		Port:          DefaultPort,
		ReportsTable:  os.Getenv("REPORTS_TABLE"),
		PrimaryLang:   DefaultPrimaryLang,
		FallbackLang:  DefaultFallbackLang,
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("ANALYZER_PRIMARY_LANG"); v != "" {
		cfg.PrimaryLang = v
	}
	if v := os.Getenv("ANALYZER_FALLBACK_LANG"); v != "" {
		cfg.FallbackLang = v
	}
	return cfg
}
