package summarizer

import (
	"github.com/drewacevedo/ytsummary/internal/logger"
)

type implSummarizer struct {
	apiKey     string
	model      string
	promptPath string
	logger     logger.Logger
}

// New creates a Summarizer calling the given Gemini model with the prompt
// template loaded from promptPath.
func New(apiKey, model, promptPath string, log logger.Logger) Summarizer {
	return &implSummarizer{
		apiKey:     apiKey,
		model:      model,
		promptPath: promptPath,
		logger:     log,
	}
}
