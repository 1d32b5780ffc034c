package youtube

import (
	"github.com/drewacevedo/ytsummary/internal/logger"
)

// Options tunes resolution behavior.
type Options struct {
	// MaxPageSize caps upload-listing pages; the Data API allows at most 50.
	MaxPageSize int64
	// EnforceCutoffOnExplicitIDs applies recency filtering even when the
	// caller named video ids directly. Off by default: explicit ids are
	// exempt from date filtering.
	EnforceCutoffOnExplicitIDs bool
}

type implResolver struct {
	api    API
	logger logger.Logger
	opts   Options
}

// NewResolver creates a Resolver on top of the given metadata API.
func NewResolver(api API, log logger.Logger, opts Options) Resolver {
	if opts.MaxPageSize <= 0 || opts.MaxPageSize > 50 {
		opts.MaxPageSize = 50
	}
	return &implResolver{
		api:    api,
		logger: log,
		opts:   opts,
	}
}
