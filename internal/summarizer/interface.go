package summarizer

import "context"

// Summarizer turns a transcript into a markdown summary body.
type Summarizer interface {
	Summarize(ctx context.Context, transcript string) (string, error)
}
