package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/giovannironzino/youtube-transcriber/internal/analysis"
	"github.com/giovannironzino/youtube-transcriber/internal/captions"
	"github.com/giovannironzino/youtube-transcriber/internal/config"
	"github.com/giovannironzino/youtube-transcriber/internal/logging"
	"github.com/giovannironzino/youtube-transcriber/internal/videoid"
)

var modelFlag string

var rootCmd = &cobra.Command{
	Use:   "analyzer-cli",
	Short: "Analyze YouTube videos from the command line",
	Long: `Analyzer CLI runs the video analysis pipeline once and prints the result
as JSON, without a server or report store.

Requires YOUTUBE_API_KEY; the analyze command also requires GEMINI_API_KEY.

Examples:
  analyzer-cli transcript https://youtu.be/dQw4w9WgXcQ
  analyzer-cli analyze https://www.youtube.com/watch?v=dQw4w9WgXcQ
  analyzer-cli analyze --model gemini-2.5-pro https://youtu.be/dQw4w9WgXcQ`,
}

var transcriptCmd = &cobra.Command{
	Use:   "transcript <video-url>",
	Short: "Fetch and normalize a video's captions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		transcript := fetchTranscript(cmd.Context(), args[0])
		fmt.Println(transcript)
	},
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <video-url>",
	Short: "Run the full eight-section analysis and print the report",
	Args:  cobra.ExactArgs(1),
	Run:   runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&modelFlag, "model", "m", "", "Gemini model to use (overrides GEMINI_MODEL)")
	rootCmd.AddCommand(transcriptCmd, analyzeCmd)
}

func main() {
	logging.Init()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func fetchTranscript(ctx context.Context, videoURL string) string {
	cfg := config.FromEnv()
	if cfg.YouTubeAPIKey == "" {
		log.Fatal().Msg("YOUTUBE_API_KEY is not set")
	}

	videoID, err := videoid.Extract(videoURL)
	if err != nil {
		log.Fatal().Str("url", videoURL).Msg("Could not find a video ID in the URL")
	}

	resolver := captions.NewResolver(captions.NewYouTubeSource(cfg.YouTubeAPIKey), cfg.PrimaryLang, cfg.FallbackLang)
	transcript, err := resolver.Resolve(ctx, videoID)
	if err != nil {
		log.Fatal().Err(err).Str("videoId", videoID).Msg("Failed to fetch transcript")
	}
	return transcript
}

func runAnalyze(cmd *cobra.Command, args []string) {
	ctx := cmd.Context()
	cfg := config.FromEnv()
	if cfg.GeminiAPIKey == "" {
		log.Fatal().Msg("GEMINI_API_KEY is not set")
	}

	transcript := fetchTranscript(ctx, args[0])

	client, err := analysis.NewGeminiClient(ctx, cfg.GeminiAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create Gemini client")
	}
	model := modelFlag
	if model == "" {
		model = analysis.GetModelName()
	}
	orchestrator := analysis.NewOrchestrator(analysis.NewGeminiGenerator(client, model))

	log.Info().Str("model", model).Int("sections", analysis.SectionCount).Msg("Starting analysis")
	sections, err := orchestrator.AnalyzeAll(ctx, analysis.Input{Transcription: transcript})
	if err != nil {
		log.Fatal().Err(err).Msg("Analysis failed")
	}

	report := analysis.Aggregate(args[0], sections)
	out, err := json.MarshalIndent(map[string]any{"reportData": report.ReportData()}, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to encode report")
	}
	fmt.Println(string(out))
}
