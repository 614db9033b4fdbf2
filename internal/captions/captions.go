// Package captions turns a video ID into a clean transcript. It lists the
// caption tracks available for the video, picks one by language preference,
// downloads the raw SRT payload, and normalizes it into plain prose.
//
// The caption-hosting platform is abstracted behind the Source interface so
// the resolution policy can be tested without network access; YouTubeSource
// is the production implementation.
package captions

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	// ErrNoCaptions indicates the video exists but has no caption tracks.
	ErrNoCaptions = errors.New("no captions found for video")

	// ErrUpstream marks failures from the caption-hosting API. The original
	// error message is preserved for diagnostics.
	ErrUpstream = errors.New("caption service error")
)

// CaptionTrack identifies one subtitle track on a video.
type CaptionTrack struct {
	ID       string
	Language string
}

// Source lists and downloads caption tracks for a video.
type Source interface {
	// List returns all caption tracks for the video, in the order the
	// platform reports them.
	List(ctx context.Context, videoID string) ([]CaptionTrack, error)

	// Download fetches the raw payload of one track in SRT format.
	Download(ctx context.Context, trackID string) (string, error)
}

// Resolver picks the best available caption track for a video and returns
// its normalized transcript. It performs no retries; retry policy, if any,
// belongs to the caller.
type Resolver struct {
	src      Source
	primary  string
	fallback string
}

// NewResolver creates a Resolver with the given language preference prefixes.
// Empty prefixes default to "pt" (primary) and "en" (fallback).
func NewResolver(src Source, primary, fallback string) *Resolver {
	if primary == "" {
		primary = "pt"
	}
	if fallback == "" {
		fallback = "en"
	}
	return &Resolver{src: src, primary: primary, fallback: fallback}
}

// Resolve lists the video's caption tracks, selects one by language
// preference, downloads it, and normalizes the payload into plain prose.
// Returns ErrNoCaptions when the video has no tracks and ErrUpstream when
// the platform call fails.
func (r *Resolver) Resolve(ctx context.Context, videoID string) (string, error) {
	tracks, err := r.src.List(ctx, videoID)
	if err != nil {
		return "", fmt.Errorf("%w: list tracks for %s: %v", ErrUpstream, videoID, err)
	}
	if len(tracks) == 0 {
		return "", fmt.Errorf("%w: %s", ErrNoCaptions, videoID)
	}

	track := selectTrack(tracks, r.primary, r.fallback)
	log.Debug().
		Str("videoId", videoID).
		Str("trackId", track.ID).
		Str("language", track.Language).
		Int("available", len(tracks)).
		Msg("Caption track selected")

	raw, err := r.src.Download(ctx, track.ID)
	if err != nil {
		return "", fmt.Errorf("%w: download track %s: %v", ErrUpstream, track.ID, err)
	}
	return NormalizeSRT(raw), nil
}

// selectTrack applies the preference policy: first track whose language code
// starts with the primary prefix, else the fallback prefix, else the first
// track in listing order. Total over any non-empty slice.
func selectTrack(tracks []CaptionTrack, primary, fallback string) CaptionTrack {
	for _, t := range tracks {
		if strings.HasPrefix(t.Language, primary) {
			return t
		}
	}
	for _, t := range tracks {
		if strings.HasPrefix(t.Language, fallback) {
			return t
		}
	}
	return tracks[0]
}
