package pipeline

import (
	"context"

	"github.com/drewacevedo/ytsummary/internal/youtube"
)

// Pipeline drives the two-phase materialization of transcripts and
// summaries over a resolved video set.
type Pipeline interface {
	Run(ctx context.Context, videos []youtube.Video) (*Report, error)
}

// HandleLookup resolves a channel id back to its public handle for the
// summary header; empty means unknown.
type HandleLookup func(ctx context.Context, channelID string) string
