package transcript

import "context"

// Extractor materializes a plain-text transcript for one video.
type Extractor interface {
	Extract(ctx context.Context, videoID string) (string, error)
}
