// Package main provides the Lambda entry point for the video analysis API.
//
// The full HTTP surface is served behind API Gateway (HTTP API, payload v2):
//   - GET  /transcript   — caption fetch and normalization
//   - POST /analyze      — eight-section analysis of supplied content
//   - POST /reports      — full URL-to-report pipeline with persistence
//   - GET  /reports      — per-user report history
//   - GET  /reports/{id} — single stored report
//
// Credentials are loaded at cold start from SSM Parameter Store:
//   - /video-analyzer/prod/gemini-api-key
//   - /video-analyzer/prod/youtube-api-key
//
// Reports persist to the DynamoDB table named by REPORTS_TABLE.
package main

import (
	"context"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/rs/zerolog/log"

	"github.com/giovannironzino/youtube-transcriber/internal/analysis"
	"github.com/giovannironzino/youtube-transcriber/internal/boot"
	"github.com/giovannironzino/youtube-transcriber/internal/captions"
	"github.com/giovannironzino/youtube-transcriber/internal/config"
	"github.com/giovannironzino/youtube-transcriber/internal/logging"
	"github.com/giovannironzino/youtube-transcriber/internal/server"
	"github.com/giovannironzino/youtube-transcriber/internal/store"
)

var srv *server.Server

func init() {
	start := time.Now()
	logging.InitJSON()

	cfg := config.FromEnv()
	aws := boot.InitAWS()

	geminiParam := os.Getenv("SSM_GEMINI_KEY_PARAM")
	youtubeParam := os.Getenv("SSM_YOUTUBE_KEY_PARAM")
	boot.LoadAPIKeys(aws.SSM, cfg, geminiParam, youtubeParam)

	var resolver *captions.Resolver
	if cfg.YouTubeAPIKey != "" {
		resolver = captions.NewResolver(captions.NewYouTubeSource(cfg.YouTubeAPIKey), cfg.PrimaryLang, cfg.FallbackLang)
	}

	var orchestrator *analysis.Orchestrator
	model := cfg.GeminiModel
	if model == "" {
		model = analysis.GetModelName()
	}
	if cfg.GeminiAPIKey != "" {
		client, err := analysis.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create Gemini client")
		}
		orchestrator = analysis.NewOrchestrator(analysis.NewGeminiGenerator(client, model))
	}

	var reports store.ReportStore = store.NewMemoryStore()
	if ds := boot.InitDynamo(aws.Config, cfg.ReportsTable); ds != nil {
		reports = ds
	}

	srv = server.New(cfg, resolver, orchestrator, reports)

	logging.NewStartupLogger("analyzer-lambda").
		DynamoTable("reports", cfg.ReportsTable).
		SSMParam("geminiKey", geminiParam).
		SSMParam("youtubeKey", youtubeParam).
		Feature("captions", resolver != nil).
		Feature("analysis", orchestrator != nil).
		Config("model", model).
		InitDuration(time.Since(start)).
		Log()
}

func main() {
	handler := server.WithMetrics(server.WithCORS(srv.Routes()))
	adapter := httpadapter.NewV2(handler)
	lambda.Start(adapter.ProxyWithContext)
}
