package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/drewacevedo/ytsummary/internal/summarizer"
	"github.com/drewacevedo/ytsummary/internal/youtube"
)

// Run executes the two phases as two full passes over the video list, so
// every transcript is attempted before any summary. Per-item failures are
// converted to skip-and-continue outcomes; nothing aborts the batch.
func (p *implPipeline) Run(ctx context.Context, videos []youtube.Video) (*Report, error) {
	report := &Report{RunRoot: p.opts.RunRoot, Resolved: len(videos)}

	if len(videos) == 0 {
		p.logger.Info(ctx, "No videos found to process")
		return report, nil
	}

	p.logger.Info(ctx, "============================================================")
	p.logger.Info(ctx, "PHASE 1: PROCESSING TRANSCRIPTS")
	p.logger.Info(ctx, "============================================================")

	satisfied := make(map[string]bool, len(videos))
	for i, video := range videos {
		p.logger.Info(ctx, "[%d/%d] Processing transcript for: %s", i+1, len(videos), video.Title)
		if err := p.materializeTranscript(ctx, video); err != nil {
			p.logger.Error(ctx, "Could not retrieve transcript for video %s: %v", video.ID, err)
			report.SkippedIDs = append(report.SkippedIDs, video.ID)
			continue
		}
		satisfied[video.ID] = true
		report.ProcessedIDs = append(report.ProcessedIDs, video.ID)
	}

	p.logger.Info(ctx, "============================================================")
	p.logger.Info(ctx, "PHASE 2: GENERATING SUMMARIES")
	p.logger.Info(ctx, "============================================================")

	eligible := make([]youtube.Video, 0, len(videos))
	for _, video := range videos {
		if satisfied[video.ID] {
			eligible = append(eligible, video)
		}
	}

	for i, video := range eligible {
		p.logger.Info(ctx, "[%d/%d] Processing summary for: %s", i+1, len(eligible), video.Title)
		if err := p.materializeSummary(ctx, video); err != nil {
			p.logger.Error(ctx, "Failed to generate summary for video %s: %v", video.ID, err)
			continue
		}
		report.SummarizedIDs = append(report.SummarizedIDs, video.ID)
	}

	report.Log(ctx, p.logger)
	return report, nil
}

// materializeTranscript satisfies Phase 1 for one video: short-circuit on
// an existing artifact, else copy a prior run's transcript (and summary
// when configured), else extract fresh.
func (p *implPipeline) materializeTranscript(ctx context.Context, video youtube.Video) error {
	transcriptPath := p.store.TranscriptPath(p.opts.RunRoot, video.ID)
	if p.store.Exists(transcriptPath) {
		p.logger.Debug(ctx, "Transcript already present: %s", transcriptPath)
		return nil
	}

	if priorTranscript, priorSummary, found := p.store.FindPrior(video.ID, p.opts.RunRoot); found {
		p.logger.Info(ctx, "Found existing transcript: %s", priorTranscript)
		if err := p.store.Copy(priorTranscript, transcriptPath); err != nil {
			return fmt.Errorf("copy prior transcript: %w", err)
		}
		if p.opts.IncludePrevious && priorSummary != "" {
			p.logger.Info(ctx, "Copying existing summary: %s", priorSummary)
			if err := p.store.Copy(priorSummary, p.store.SummaryPath(p.opts.RunRoot, video.ID)); err != nil {
				p.logger.Warn(ctx, "Failed to copy prior summary for %s: %v", video.ID, err)
			}
		}
		return nil
	}

	p.logger.Info(ctx, "Downloading new transcript...")
	text, err := p.extractor.Extract(ctx, video.ID)
	if err != nil {
		return err
	}
	if err := p.store.Write(transcriptPath, []byte(text)); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	p.logger.Info(ctx, "Transcript saved to: %s", transcriptPath)
	return nil
}

// materializeSummary satisfies Phase 2 for one video. A failed
// summarization persists nothing and leaves the video unsummarized.
func (p *implPipeline) materializeSummary(ctx context.Context, video youtube.Video) error {
	summaryPath := p.store.SummaryPath(p.opts.RunRoot, video.ID)
	if p.store.Exists(summaryPath) {
		p.logger.Info(ctx, "Summary already exists: %s", summaryPath)
		return nil
	}

	transcriptPath := p.store.TranscriptPath(p.opts.RunRoot, video.ID)
	if !p.store.Exists(transcriptPath) {
		return fmt.Errorf("no transcript file for video %s", video.ID)
	}
	data, err := p.store.Read(transcriptPath)
	if err != nil {
		return fmt.Errorf("load transcript: %w", err)
	}

	body, err := p.summarizer.Summarize(ctx, string(data))
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	content := p.composeSummary(ctx, video, body)
	if err := p.store.Write(summaryPath, []byte(content)); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	p.logger.Info(ctx, "Summary saved to: %s", summaryPath)

	if p.opts.WriteDocx {
		docxPath := strings.TrimSuffix(summaryPath, ".md") + ".docx"
		if err := summarizer.WriteDocx(video.Title, body, docxPath); err != nil {
			p.logger.Warn(ctx, "Failed to write docx for %s: %v", video.ID, err)
		}
	}

	return nil
}

// composeSummary prepends the provenance header block to the summary body.
func (p *implPipeline) composeSummary(ctx context.Context, video youtube.Video, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Video Title: %s\n", video.Title)
	if video.ChannelID != "" && p.handles != nil {
		if handle := p.handles(ctx, video.ChannelID); handle != "" {
			fmt.Fprintf(&b, "Channel Handle: %s\n", handle)
		}
	}
	fmt.Fprintf(&b, "Video ID: %s\n", video.ID)
	fmt.Fprintf(&b, "Published At: %s\n", video.PublishedAt.Format(time.RFC3339))
	fmt.Fprintf(&b, "Summary Generated At: %s\n", p.now().Format(time.RFC3339))
	b.WriteString(strings.Repeat("-", 50))
	b.WriteString("\n\n")
	b.WriteString(body)
	return b.String()
}
