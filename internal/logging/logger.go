// Package logging configures the global zerolog logger.
package logging

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init initializes the global logger with configuration from environment
// variables. ANALYZER_LOG_LEVEL controls the log level: debug, info, warn,
// error (default: info). Output goes to a human-readable console writer on
// stderr; Lambda entry points call InitJSON instead so CloudWatch receives
// structured lines.
func Init() {
	setLevel()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

// InitJSON configures the same level handling but keeps zerolog's default
// JSON output, which CloudWatch Logs Insights can query field by field.
func InitJSON() {
	setLevel()
}

func setLevel() {
	switch os.Getenv("ANALYZER_LOG_LEVEL") {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
