package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"

	"github.com/giovannironzino/youtube-transcriber/internal/analysis"
)

// DynamoDB key constants for the single-table design.
const (
	pkPrefix = "USER#"
	skReport = "REPORT#"
)

// DynamoStore implements ReportStore using AWS DynamoDB.
type DynamoStore struct {
	client    *dynamodb.Client
	tableName string
}

// Compile-time interface check.
var _ ReportStore = (*DynamoStore)(nil)

// NewDynamoStore creates a DynamoStore for the given table. The client
// should be initialized from the shared AWS config.
func NewDynamoStore(client *dynamodb.Client, tableName string) *DynamoStore {
	return &DynamoStore{client: client, tableName: tableName}
}

// --- Internal helpers ---

func userPK(userID string) string {
	return pkPrefix + userID
}

func reportSK(reportID string) string {
	return skReport + reportID
}

// reportRecord is the DynamoDB representation of a report. ID and UserID are
// derived from PK/SK on read; the transcript is stored zstd-compressed to
// stay well inside the 400 KB item limit.
type reportRecord struct {
	VideoURL      string                             `dynamodbav:"videoUrl"`
	ReportData    map[string]*analysis.SectionResult `dynamodbav:"reportData"`
	TranscriptZst []byte                             `dynamodbav:"transcriptZst,omitempty"`
	CreatedAt     int64                              `dynamodbav:"createdAt"`
}

// PutReport stores a completed report under USER#{userID} / REPORT#{r.ID}.
func (s *DynamoStore) PutReport(ctx context.Context, userID string, r *analysis.Report) error {
	rec := reportRecord{
		VideoURL:      r.VideoURL,
		ReportData:    r.ReportData(),
		TranscriptZst: compressTranscript(r.Transcription),
		CreatedAt:     r.CreatedAt.UnixMilli(),
	}

	item, err := attributevalue.MarshalMap(rec)
	if err != nil {
		return fmt.Errorf("marshal report %s: %w", r.ID, err)
	}
	item["PK"] = &types.AttributeValueMemberS{Value: userPK(userID)}
	item["SK"] = &types.AttributeValueMemberS{Value: reportSK(r.ID)}

	if _, err := s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: &s.tableName,
		Item:      item,
	}); err != nil {
		return fmt.Errorf("PutItem report %s: %w", r.ID, err)
	}

	log.Debug().
		Str("userId", userID).
		Str("reportId", r.ID).
		Int("transcriptBytes", len(rec.TranscriptZst)).
		Msg("Report persisted")
	return nil
}

// GetReport retrieves one report. Returns nil, nil if not found.
func (s *DynamoStore) GetReport(ctx context.Context, userID, reportID string) (*analysis.Report, error) {
	result, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: &s.tableName,
		Key: map[string]types.AttributeValue{
			"PK": &types.AttributeValueMemberS{Value: userPK(userID)},
			"SK": &types.AttributeValueMemberS{Value: reportSK(reportID)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("GetItem report %s: %w", reportID, err)
	}
	if result.Item == nil {
		return nil, nil
	}

	var rec reportRecord
	if err := attributevalue.UnmarshalMap(result.Item, &rec); err != nil {
		return nil, fmt.Errorf("unmarshal report %s: %w", reportID, err)
	}

	transcript, err := decompressTranscript(rec.TranscriptZst)
	if err != nil {
		return nil, fmt.Errorf("decompress transcript for report %s: %w", reportID, err)
	}

	return &analysis.Report{
		ID:            reportID,
		UserID:        userID,
		VideoURL:      rec.VideoURL,
		Sections:      analysis.SectionsFromReportData(rec.ReportData),
		CreatedAt:     time.UnixMilli(rec.CreatedAt).UTC(),
		Transcription: transcript,
	}, nil
}

// ListReports returns all report summaries for a user, newest first.
func (s *DynamoStore) ListReports(ctx context.Context, userID string) ([]ReportSummary, error) {
	input := &dynamodb.QueryInput{
		TableName:              &s.tableName,
		KeyConditionExpression: aws.String("PK = :pk AND begins_with(SK, :skPrefix)"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pk":       &types.AttributeValueMemberS{Value: userPK(userID)},
			":skPrefix": &types.AttributeValueMemberS{Value: skReport},
		},
		ProjectionExpression: aws.String("SK, videoUrl, createdAt"),
	}

	var summaries []ReportSummary
	paginator := dynamodb.NewQueryPaginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("query reports for %s: %w", userID, err)
		}
		for _, item := range page.Items {
			var rec struct {
				SK        string `dynamodbav:"SK"`
				VideoURL  string `dynamodbav:"videoUrl"`
				CreatedAt int64  `dynamodbav:"createdAt"`
			}
			if err := attributevalue.UnmarshalMap(item, &rec); err != nil {
				return nil, fmt.Errorf("unmarshal report summary: %w", err)
			}
			summaries = append(summaries, ReportSummary{
				ID:        strings.TrimPrefix(rec.SK, skReport),
				VideoURL:  rec.VideoURL,
				CreatedAt: time.UnixMilli(rec.CreatedAt).UTC(),
			})
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
	})
	return summaries, nil
}
