// Package boot provides shared Lambda cold-start bootstrap logic: AWS
// config, the DynamoDB report store, and SSM-backed API credentials. Each
// entry point's init() is a short composition of these helpers.
package boot

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"

	"github.com/giovannironzino/youtube-transcriber/internal/config"
	"github.com/giovannironzino/youtube-transcriber/internal/store"
)

// Default SSM parameter paths for API credentials, overridable via
// SSM_GEMINI_KEY_PARAM and SSM_YOUTUBE_KEY_PARAM.
const (
	DefaultGeminiKeyParam  = "/video-analyzer/prod/gemini-api-key"
	DefaultYouTubeKeyParam = "/video-analyzer/prod/youtube-api-key"
)

// AWSClients holds the core AWS SDK clients used by the Lambda entry point.
type AWSClients struct {
	Config aws.Config
	SSM    *ssm.Client
}

// InitAWS loads the default AWS config and returns the shared clients.
// Fatals on error; there is no useful degraded mode in Lambda.
func InitAWS() AWSClients {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load AWS config")
	}
	log.Debug().Str("region", cfg.Region).Msg("AWS config loaded")
	return AWSClients{Config: cfg, SSM: ssm.NewFromConfig(cfg)}
}

// InitDynamo creates a DynamoDB report store for the configured table.
// Returns nil (with a warning) when no table is configured.
func InitDynamo(awsCfg aws.Config, tableName string) *store.DynamoStore {
	if tableName == "" {
		log.Warn().Msg("REPORTS_TABLE not set — report persistence disabled")
		return nil
	}
	return store.NewDynamoStore(dynamodb.NewFromConfig(awsCfg), tableName)
}

// LoadAPIKeys fills in missing API credentials from SSM Parameter Store.
// Credentials already present (from env) are left untouched; SSM lookup
// failures are logged and leave the credential empty, so the affected
// endpoint surfaces a configuration error on first use.
func LoadAPIKeys(ssmClient *ssm.Client, cfg *config.Config, geminiParam, youtubeParam string) {
	if geminiParam == "" {
		geminiParam = DefaultGeminiKeyParam
	}
	if youtubeParam == "" {
		youtubeParam = DefaultYouTubeKeyParam
	}

	if cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = fetchParameter(ssmClient, geminiParam)
	}
	if cfg.YouTubeAPIKey == "" {
		cfg.YouTubeAPIKey = fetchParameter(ssmClient, youtubeParam)
	}
}

// fetchParameter reads one decrypted SSM parameter, returning "" on failure.
func fetchParameter(ssmClient *ssm.Client, name string) string {
	start := time.Now()
	result, err := ssmClient.GetParameter(context.Background(), &ssm.GetParameterInput{
		Name:           &name,
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		log.Warn().Err(err).Str("param", name).Msg("Failed to read credential from SSM")
		return ""
	}
	log.Debug().Str("param", name).Dur("elapsed", time.Since(start)).Msg("Credential loaded from SSM")
	return *result.Parameter.Value
}
