package captions

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	// defaultBaseURL is the YouTube Data API v3 base URL.
	defaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// defaultTimeout is the HTTP client timeout for API calls.
	defaultTimeout = 30 * time.Second
)

// YouTubeSource implements Source over the YouTube Data API v3 captions
// endpoints. Listing uses captions.list with part=snippet; downloads request
// the track in SRT format (tfmt=srt).
type YouTubeSource struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// Compile-time interface check.
var _ Source = (*YouTubeSource)(nil)

// NewYouTubeSource creates a caption source authenticated with the given
// YouTube Data API key.
func NewYouTubeSource(apiKey string) *YouTubeSource {
	return &YouTubeSource{
		httpClient: &http.Client{Timeout: defaultTimeout},
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
	}
}

// captionListResponse mirrors the captions.list JSON payload.
type captionListResponse struct {
	Items []struct {
		ID      string `json:"id"`
		Snippet struct {
			Language string `json:"language"`
		} `json:"snippet"`
	} `json:"items"`
}

// List returns the caption tracks for videoID in the order the API reports
// them.
func (s *YouTubeSource) List(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	q := url.Values{}
	q.Set("part", "snippet")
	q.Set("videoId", videoID)
	q.Set("key", s.apiKey)

	body, err := s.get(ctx, fmt.Sprintf("%s/captions?%s", s.baseURL, q.Encode()))
	if err != nil {
		return nil, fmt.Errorf("captions.list: %w", err)
	}

	var parsed captionListResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("captions.list: decode response: %w", err)
	}

	tracks := make([]CaptionTrack, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		tracks = append(tracks, CaptionTrack{ID: item.ID, Language: item.Snippet.Language})
	}
	log.Debug().Str("videoId", videoID).Int("tracks", len(tracks)).Msg("Caption tracks listed")
	return tracks, nil
}

// Download fetches the raw SRT payload for the given track.
func (s *YouTubeSource) Download(ctx context.Context, trackID string) (string, error) {
	q := url.Values{}
	q.Set("key", s.apiKey)
	q.Set("tfmt", "srt")

	body, err := s.get(ctx, fmt.Sprintf("%s/captions/%s?%s", s.baseURL, url.PathEscape(trackID), q.Encode()))
	if err != nil {
		return "", fmt.Errorf("captions.download: %w", err)
	}
	return string(body), nil
}

// get performs a GET request and returns the response body, treating any
// non-200 status as an error that includes a truncated body excerpt.
func (s *YouTubeSource) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned status %d: %s", resp.StatusCode, excerpt(body))
	}
	return body, nil
}

// excerpt returns the body trimmed to a diagnosable length for error messages.
func excerpt(body []byte) string {
	const maxLen = 200
	if len(body) > maxLen {
		return string(body[:maxLen]) + "..."
	}
	return string(body)
}
