// Package videoid extracts the canonical 11-character video identifier from
// the many URL shapes users paste: full watch URLs, youtu.be short links,
// embed URLs, and generic paths ending in an ID-shaped token.
package videoid

import (
	"errors"
	"regexp"
)

// ErrNoVideoID indicates the input contained no recognizable video identifier.
// This is a client-input error: callers should reject the request rather than
// retry.
var ErrNoVideoID = errors.New("no video ID found in URL")

// idPattern is the single unified pattern for all recognized URL shapes.
// The first alternative covers youtube.com watch/embed/v URLs and youtu.be
// short links; the second covers any path whose final segment is an
// 11-character ID token.
var idPattern = regexp.MustCompile(
	`(?:youtube\.com/(?:[^/]+/.+/|(?:v|e(?:mbed)?|shorts)/|.*[?&]v=)|youtu\.be/)([A-Za-z0-9_-]{11})` +
		`|/([A-Za-z0-9_-]{11})(?:[?&#]|$)`)

// Extract returns the video ID embedded in rawURL, or ErrNoVideoID when no
// 11-character token is present. It does not verify that the ID refers to an
// existing video; that is proven only by the downstream caption lookup.
func Extract(rawURL string) (string, error) {
	m := idPattern.FindStringSubmatch(rawURL)
	if m == nil {
		return "", ErrNoVideoID
	}
	if m[1] != "" {
		return m[1], nil
	}
	return m[2], nil
}
