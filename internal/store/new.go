package store

import (
	"time"

	"github.com/drewacevedo/ytsummary/internal/logger"
)

type implStore struct {
	baseDir string
	logger  logger.Logger
	now     func() time.Time
}

// New creates a Store rooted at baseDir (the parent of all run roots).
func New(baseDir string, log logger.Logger) Store {
	return &implStore{
		baseDir: baseDir,
		logger:  log,
		now:     time.Now,
	}
}
