package transcript

import (
	"github.com/drewacevedo/ytsummary/internal/logger"
	"github.com/drewacevedo/ytsummary/pkg/executor"
)

type implExtractor struct {
	executor executor.Executor
	logger   logger.Logger
	language string
}

// New creates an Extractor fetching subtitles in the given language.
func New(exec executor.Executor, log logger.Logger, language string) Extractor {
	return &implExtractor{
		executor: exec,
		logger:   log,
		language: language,
	}
}
