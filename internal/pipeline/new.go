package pipeline

import (
	"time"

	"github.com/drewacevedo/ytsummary/internal/logger"
	"github.com/drewacevedo/ytsummary/internal/store"
	"github.com/drewacevedo/ytsummary/internal/summarizer"
	"github.com/drewacevedo/ytsummary/internal/transcript"
)

// Options is the per-run state passed explicitly into the orchestrator.
type Options struct {
	RunRoot string
	// IncludePrevious also copies a prior run's summary when its
	// transcript is copied forward.
	IncludePrevious bool
	// WriteDocx additionally exports each fresh summary as a .docx file.
	WriteDocx bool
}

type implPipeline struct {
	store      store.Store
	extractor  transcript.Extractor
	summarizer summarizer.Summarizer
	handles    HandleLookup
	logger     logger.Logger
	opts       Options
	now        func() time.Time
}

// New creates a Pipeline over the given collaborators.
func New(st store.Store, ext transcript.Extractor, sum summarizer.Summarizer, handles HandleLookup, log logger.Logger, opts Options) Pipeline {
	return &implPipeline{
		store:      st,
		extractor:  ext,
		summarizer: sum,
		handles:    handles,
		logger:     log,
		opts:       opts,
		now:        time.Now,
	}
}
