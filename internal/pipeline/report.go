package pipeline

import (
	"context"
	"strings"

	"github.com/drewacevedo/ytsummary/internal/logger"
)

// Report aggregates per-run outcomes.
type Report struct {
	RunRoot       string
	Resolved      int
	ProcessedIDs  []string // transcripts materialized this run
	SkippedIDs    []string // no transcript, dropped before Phase 2
	SummarizedIDs []string
}

// Log emits the terminal summary block.
func (r *Report) Log(ctx context.Context, log logger.Logger) {
	log.Info(ctx, "============================================================")
	log.Info(ctx, "PROCESSING RESULTS:")
	log.Info(ctx, "Run folder: %s", r.RunRoot)
	log.Info(ctx, "Resolved videos: %d", r.Resolved)
	log.Info(ctx, "Processed videos: %d", len(r.ProcessedIDs))
	log.Info(ctx, "Skipped videos: %d", len(r.SkippedIDs))
	log.Info(ctx, "Summarized videos: %d", len(r.SummarizedIDs))

	if len(r.SummarizedIDs) > 0 {
		log.Info(ctx, "SUMMARIZED VIDEO IDs: %s", strings.Join(r.SummarizedIDs, ","))
	}
	if len(r.SkippedIDs) > 0 {
		log.Info(ctx, "SKIPPED VIDEO IDs: %s", strings.Join(r.SkippedIDs, ","))
	}
	log.Info(ctx, "============================================================")
}
