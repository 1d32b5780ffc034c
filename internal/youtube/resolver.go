package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const searchResultLimit = 10

// Resolve maps inputs to videos, concatenating per-input results in input
// order and collapsing duplicate ids to their first occurrence. Per-input
// failures are logged and contribute nothing; an empty total result is
// not an error.
func (r *implResolver) Resolve(ctx context.Context, inputs []string, mode Mode, cutoff time.Time) []Video {
	var all []Video

	switch mode {
	case ModeExplicitIDs:
		r.logger.Info(ctx, "Processing %d video id(s)...", len(inputs))
		for _, videoID := range inputs {
			video, err := r.resolveVideoID(ctx, videoID, cutoff)
			if err != nil {
				r.logger.Warn(ctx, "Skipping video id %s: %v", videoID, err)
				continue
			}
			if video == nil {
				continue
			}
			all = append(all, *video)
			r.logger.Info(ctx, "Added video: %s", video.Title)
		}
	default:
		for _, input := range inputs {
			handle := NormalizeHandle(input)
			r.logger.Info(ctx, "Looking up channel: %s", handle)
			channelID, err := r.channelID(ctx, handle)
			if err != nil {
				r.logger.Error(ctx, "Could not find channel for %q: %v", handle, err)
				continue
			}
			r.logger.Info(ctx, "Found channel ID: %s", channelID)

			videos := r.channelVideos(ctx, channelID, cutoff)
			if len(videos) == 0 {
				r.logger.Info(ctx, "No new videos found for channel %q in the specified period", handle)
				continue
			}
			all = append(all, videos...)
			r.logger.Info(ctx, "Found %d videos from channel %q", len(videos), handle)
		}
	}

	return dedupeByID(all)
}

// ChannelHandle resolves a channel id back to its public handle,
// returning an empty string when unavailable.
func (r *implResolver) ChannelHandle(ctx context.Context, channelID string) string {
	handle, err := r.api.ChannelHandle(ctx, channelID)
	if err != nil {
		r.logger.Warn(ctx, "Could not resolve handle for channel %s: %v", channelID, err)
		return ""
	}
	return handle
}

// NormalizeHandle trims an input and guarantees the leading @ marker.
func NormalizeHandle(raw string) string {
	handle := strings.TrimSpace(raw)
	if !strings.HasPrefix(handle, "@") {
		handle = "@" + handle
	}
	return handle
}

// lookupStrategy is one stage of the handle resolution fallback chain.
type lookupStrategy struct {
	name string
	fn   func(ctx context.Context) (string, error)
}

// channelID resolves a handle through an ordered chain of lookups:
// direct handle, legacy username, then free-text channel search.
// Each stage failing or finding nothing falls through to the next.
func (r *implResolver) channelID(ctx context.Context, rawHandle string) (string, error) {
	handle := NormalizeHandle(rawHandle)
	bare := strings.TrimPrefix(handle, "@")

	strategies := []lookupStrategy{
		{"handle", func(ctx context.Context) (string, error) {
			return r.api.ChannelIDByHandle(ctx, handle)
		}},
		{"username", func(ctx context.Context) (string, error) {
			return r.api.ChannelIDByUsername(ctx, bare)
		}},
		{"search", func(ctx context.Context) (string, error) {
			return r.searchChannel(ctx, handle, bare)
		}},
	}

	for _, strategy := range strategies {
		id, err := strategy.fn(ctx)
		if err != nil {
			r.logger.Warn(ctx, "Channel lookup via %s failed for %q: %v", strategy.name, handle, err)
			continue
		}
		if id != "" {
			return id, nil
		}
	}

	return "", fmt.Errorf("no channel found for handle %s", handle)
}

// searchChannel is the last-resort lookup: a free-text search picking an
// exact title substring match if any, else the top hit. Substring matching
// is best effort and can pick an unrelated channel sharing a word.
func (r *implResolver) searchChannel(ctx context.Context, handle, bare string) (string, error) {
	hits, err := r.api.SearchChannels(ctx, handle, searchResultLimit)
	if err != nil {
		return "", err
	}

	for _, hit := range hits {
		title := strings.ToLower(hit.Title)
		if strings.Contains(title, strings.ToLower(handle)) || strings.Contains(title, strings.ToLower(bare)) {
			return hit.ChannelID, nil
		}
	}

	if len(hits) > 0 {
		r.logger.Warn(ctx, "No exact match found for handle %q. Using closest match: %q", handle, hits[0].Title)
		return hits[0].ChannelID, nil
	}

	return "", nil
}

// channelVideos walks the channel's upload listing newest-first, keeping
// items published at or after cutoff. The listing is chronologically
// sorted, so the first item older than cutoff ends enumeration with no
// further pages fetched. Live content is dropped per page via one batched
// detail call.
func (r *implResolver) channelVideos(ctx context.Context, channelID string, cutoff time.Time) []Video {
	playlistID, err := r.api.UploadsPlaylistID(ctx, channelID)
	if err != nil {
		r.logger.Error(ctx, "Could not fetch uploads playlist for channel %s: %v", channelID, err)
		return nil
	}

	var videos []Video
	pageToken := ""
	for {
		items, nextToken, err := r.api.PlaylistPage(ctx, playlistID, pageToken, r.opts.MaxPageSize)
		if err != nil {
			r.logger.Error(ctx, "Could not fetch videos for channel %s: %v", channelID, err)
			return videos
		}

		var batch []Video
		reachedCutoff := false
		for _, item := range items {
			if item.PublishedAt.Before(cutoff) {
				reachedCutoff = true
				break
			}
			batch = append(batch, item)
		}

		if len(batch) > 0 {
			ids := make([]string, 0, len(batch))
			for _, v := range batch {
				ids = append(ids, v.ID)
			}
			live, err := r.api.LiveDetails(ctx, ids)
			if err != nil {
				r.logger.Error(ctx, "Could not fetch live details for channel %s: %v", channelID, err)
				return videos
			}
			for _, v := range batch {
				if live[v.ID] {
					r.logger.Info(ctx, "Skipping live content: %s", v.Title)
					continue
				}
				v.ChannelID = channelID
				videos = append(videos, v)
			}
		}

		if reachedCutoff || len(batch) == 0 || nextToken == "" {
			break
		}
		pageToken = nextToken
	}

	return videos
}

// resolveVideoID fetches full detail for one explicitly named video.
// Live content is always skipped; cutoff filtering applies only when
// configured and a lookback window is set.
func (r *implResolver) resolveVideoID(ctx context.Context, videoID string, cutoff time.Time) (*Video, error) {
	video, err := r.api.VideoDetails(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video == nil {
		return nil, fmt.Errorf("no video found for id %s", videoID)
	}

	if video.IsLiveContent {
		r.logger.Info(ctx, "Skipping live content: %s", video.Title)
		return nil, nil
	}

	if r.opts.EnforceCutoffOnExplicitIDs && !cutoff.IsZero() && video.PublishedAt.Before(cutoff) {
		r.logger.Warn(ctx, "Video %q was published before the cutoff date. Skipping...", video.Title)
		return nil, nil
	}

	return video, nil
}

// dedupeByID collapses duplicate ids, keeping the first occurrence and
// preserving order.
func dedupeByID(videos []Video) []Video {
	seen := make(map[string]struct{}, len(videos))
	out := make([]Video, 0, len(videos))
	for _, v := range videos {
		if _, ok := seen[v.ID]; ok {
			continue
		}
		seen[v.ID] = struct{}{}
		out = append(out, v)
	}
	return out
}
