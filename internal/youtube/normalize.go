// Package youtube normalizes user-supplied video URLs before download.
package youtube

import (
	"fmt"
	"net/url"
)

// CanonicalWatchURL reduces a YouTube URL to its canonical watch form.
// If the URL carries a `v` query parameter, the result is
// https://www.youtube.com/watch?v=<id> with all other parameters dropped.
// Anything else (short links, non-YouTube URLs, unparseable input) passes
// through unchanged. Normalization never fails.
func CanonicalWatchURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	videoID := parsed.Query().Get("v")
	if videoID == "" {
		return raw
	}

	return fmt.Sprintf("https://www.youtube.com/watch?v=%s", videoID)
}
