package store

import (
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// Shared one-shot codecs. EncodeAll/DecodeAll are safe for concurrent use.
var (
	zstdEncoder, _ = zstd.NewWriter(nil)
	zstdDecoder, _ = zstd.NewReader(nil)
)

// compressTranscript compresses a transcript for storage. Empty transcripts
// yield nil so the attribute is omitted entirely.
func compressTranscript(transcript string) []byte {
	if transcript == "" {
		return nil
	}
	return zstdEncoder.EncodeAll([]byte(transcript), nil)
}

// decompressTranscript reverses compressTranscript. nil input yields "".
func decompressTranscript(data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}
	out, err := zstdDecoder.DecodeAll(data, nil)
	if err != nil {
		return "", fmt.Errorf("zstd decode: %w", err)
	}
	return string(out), nil
}
