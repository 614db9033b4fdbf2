package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/giovannironzino/youtube-transcriber/internal/analysis"
	"github.com/giovannironzino/youtube-transcriber/internal/boot"
	"github.com/giovannironzino/youtube-transcriber/internal/captions"
	"github.com/giovannironzino/youtube-transcriber/internal/config"
	"github.com/giovannironzino/youtube-transcriber/internal/logging"
	"github.com/giovannironzino/youtube-transcriber/internal/server"
	"github.com/giovannironzino/youtube-transcriber/internal/store"
)

// CLI flags
var (
	portFlag  int
	modelFlag string
)

var rootCmd = &cobra.Command{
	Use:   "analyzer-web",
	Short: "HTTP server for YouTube video semiotic analysis",
	Long: `Analyzer Web starts the video analysis HTTP server. It fetches YouTube
captions, runs the eight-section semiotic analysis through Gemini, and keeps
a per-user history of generated reports.

Credentials come from the environment: YOUTUBE_API_KEY for caption access
and GEMINI_API_KEY for analysis. Without a REPORTS_TABLE the report history
lives in memory and is lost on restart.

Examples:
  analyzer-web
  analyzer-web --port 9090
  analyzer-web --model gemini-2.5-pro`,
	Run: runMain,
}

func init() {
	rootCmd.Flags().IntVar(&portFlag, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.Flags().StringVarP(&modelFlag, "model", "m", "", "Gemini model to use (overrides GEMINI_MODEL)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runMain(cmd *cobra.Command, args []string) {
	logging.Init()

	cfg := config.FromEnv()
	if portFlag != 0 {
		cfg.Port = portFlag
	}
	if modelFlag != "" {
		cfg.GeminiModel = modelFlag
	}

	ctx := context.Background()
	srv := buildServer(ctx, cfg)

	handler := server.WithLogging(server.WithCORS(srv.Routes()))

	addr := fmt.Sprintf(":%d", cfg.Port)
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 300 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info().Msg("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpSrv.Shutdown(ctx)
	}()

	log.Info().Int("port", cfg.Port).Msg("Starting analyzer server")
	fmt.Printf("\n  Video Analyzer API: http://localhost:%d\n\n", cfg.Port)

	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

// buildServer wires whatever the environment provides. Missing credentials
// disable the matching endpoints rather than aborting startup, so the health
// check and report history stay reachable.
func buildServer(ctx context.Context, cfg *config.Config) *server.Server {
	var resolver *captions.Resolver
	if cfg.YouTubeAPIKey != "" {
		resolver = captions.NewResolver(captions.NewYouTubeSource(cfg.YouTubeAPIKey), cfg.PrimaryLang, cfg.FallbackLang)
	} else {
		log.Warn().Msg("YOUTUBE_API_KEY not set; transcript endpoints disabled")
	}

	var orchestrator *analysis.Orchestrator
	if cfg.GeminiAPIKey != "" {
		client, err := analysis.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Gemini client")
		}
		model := cfg.GeminiModel
		if model == "" {
			model = analysis.GetModelName()
		}
		orchestrator = analysis.NewOrchestrator(analysis.NewGeminiGenerator(client, model))
		log.Info().Str("model", model).Msg("Gemini client initialized")
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set; analysis endpoints disabled")
	}

	var reports store.ReportStore = store.NewMemoryStore()
	if cfg.ReportsTable != "" {
		aws := boot.InitAWS()
		reports = boot.InitDynamo(aws.Config, cfg.ReportsTable)
		log.Info().Str("table", cfg.ReportsTable).Msg("Using DynamoDB report store")
	} else {
		log.Info().Msg("Using in-memory report store")
	}

	return server.New(cfg, resolver, orchestrator, reports)
}
