package youtube

import (
	"context"
	"time"
)

// Video describes one candidate video in the working set.
type Video struct {
	ID            string
	Title         string
	PublishedAt   time.Time
	ChannelID     string // empty when unknown
	IsLiveContent bool
}

// ChannelHit is one result of a free-text channel search.
type ChannelHit struct {
	ChannelID string
	Title     string
}

// Mode selects how raw inputs are interpreted.
type Mode int

const (
	ModeChannelHandles Mode = iota
	ModeExplicitIDs
)

// API is the subset of the YouTube Data API the resolver depends on.
// Lookups that find nothing return zero values with a nil error;
// errors are reserved for request failures.
type API interface {
	ChannelIDByHandle(ctx context.Context, handle string) (string, error)
	ChannelIDByUsername(ctx context.Context, username string) (string, error)
	SearchChannels(ctx context.Context, query string, maxResults int64) ([]ChannelHit, error)
	UploadsPlaylistID(ctx context.Context, channelID string) (string, error)
	PlaylistPage(ctx context.Context, playlistID, pageToken string, maxResults int64) ([]Video, string, error)
	LiveDetails(ctx context.Context, videoIDs []string) (map[string]bool, error)
	VideoDetails(ctx context.Context, videoID string) (*Video, error)
	ChannelHandle(ctx context.Context, channelID string) (string, error)
}

// Resolver turns raw inputs into a deduplicated, cutoff-filtered,
// ordered list of videos.
type Resolver interface {
	Resolve(ctx context.Context, inputs []string, mode Mode, cutoff time.Time) []Video
	ChannelHandle(ctx context.Context, channelID string) string
}
