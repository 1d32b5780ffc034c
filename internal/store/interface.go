package store

// Store owns the mapping from run roots and video ids to artifact paths
// and the cross-run reuse lookup. No other component derives paths.
type Store interface {
	// NewRunRoot allocates a fresh run directory (with transcript and
	// summary sub-areas) named by a timestamp key, suffixed on collision.
	NewRunRoot() (string, error)
	TranscriptPath(runRoot, videoID string) string
	SummaryPath(runRoot, videoID string) string
	Exists(path string) bool
	// FindPrior scans prior run roots for a transcript of videoID,
	// returning the first hit in listing order plus the path of that
	// run's summary when present (empty otherwise).
	FindPrior(videoID, excludeRoot string) (transcriptPath, summaryPath string, found bool)
	Read(path string) ([]byte, error)
	Write(path string, data []byte) error
	// Copy duplicates an artifact byte for byte.
	Copy(src, dst string) error
}
