package config

import "testing"

func TestFromEnvDefaults(t *testing.T) {
	for _, v := range []string{"YOUTUBE_API_KEY", "GEMINI_API_KEY", "GEMINI_MODEL", "PORT", "REPORTS_TABLE", "ANALYZER_PRIMARY_LANG", "ANALYZER_FALLBACK_LANG"} {
		t.Setenv(v, "")
	}

	cfg := FromEnv()
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.PrimaryLang != "pt" || cfg.FallbackLang != "en" {
		t.Errorf("language prefixes = (%q, %q), want (pt, en)", cfg.PrimaryLang, cfg.FallbackLang)
	}
	if cfg.YouTubeAPIKey != "" || cfg.GeminiAPIKey != "" {
		t.Error("expected empty credentials")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("YOUTUBE_API_KEY", "yt-key")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("PORT", "8081")
	t.Setenv("REPORTS_TABLE", "reports")
	t.Setenv("ANALYZER_PRIMARY_LANG", "es")
	t.Setenv("ANALYZER_FALLBACK_LANG", "fr")

	cfg := FromEnv()
	if cfg.YouTubeAPIKey != "yt-key" || cfg.GeminiAPIKey != "gm-key" {
		t.Error("credentials not read from env")
	}
	if cfg.Port != 8081 {
		t.Errorf("Port = %d, want 8081", cfg.Port)
	}
	if cfg.ReportsTable != "reports" {
		t.Errorf("ReportsTable = %q", cfg.ReportsTable)
	}
	if cfg.PrimaryLang != "es" || cfg.FallbackLang != "fr" {
		t.Errorf("language prefixes = (%q, %q)", cfg.PrimaryLang, cfg.FallbackLang)
	}
}

func TestFromEnvBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-number")

	if cfg := FromEnv(); cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want default %d on unparsable PORT", cfg.Port, DefaultPort)
	}
}
