package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"
)

// dataAPI implements API on the official YouTube Data API v3 client.
type dataAPI struct {
	svc *yt.Service
}

// NewAPI creates a Data API client authenticated with an API key.
func NewAPI(ctx context.Context, apiKey string) (API, error) {
	svc, err := yt.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return &dataAPI{svc: svc}, nil
}

func (a *dataAPI) ChannelIDByHandle(ctx context.Context, handle string) (string, error) {
	resp, err := a.svc.Channels.List([]string{"id"}).ForHandle(handle).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("channels.list forHandle: %w", err)
	}
	if len(resp.Items) == 0 {
		return "", nil
	}
	return resp.Items[0].Id, nil
}

func (a *dataAPI) ChannelIDByUsername(ctx context.Context, username string) (string, error) {
	resp, err := a.svc.Channels.List([]string{"id"}).ForUsername(username).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("channels.list forUsername: %w", err)
	}
	if len(resp.Items) == 0 {
		return "", nil
	}
	return resp.Items[0].Id, nil
}

func (a *dataAPI) SearchChannels(ctx context.Context, query string, maxResults int64) ([]ChannelHit, error) {
	resp, err := a.svc.Search.List([]string{"snippet"}).
		Q(query).
		Type("channel").
		MaxResults(maxResults).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("search.list: %w", err)
	}

	hits := make([]ChannelHit, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil {
			continue
		}
		hits = append(hits, ChannelHit{
			ChannelID: item.Snippet.ChannelId,
			Title:     item.Snippet.Title,
		})
	}
	return hits, nil
}

func (a *dataAPI) UploadsPlaylistID(ctx context.Context, channelID string) (string, error) {
	resp, err := a.svc.Channels.List([]string{"contentDetails"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("channels.list contentDetails: %w", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].ContentDetails == nil || resp.Items[0].ContentDetails.RelatedPlaylists == nil {
		return "", fmt.Errorf("no uploads playlist for channel %s", channelID)
	}
	return resp.Items[0].ContentDetails.RelatedPlaylists.Uploads, nil
}

func (a *dataAPI) PlaylistPage(ctx context.Context, playlistID, pageToken string, maxResults int64) ([]Video, string, error) {
	call := a.svc.PlaylistItems.List([]string{"snippet"}).
		PlaylistId(playlistID).
		MaxResults(maxResults).
		Context(ctx)
	if pageToken != "" {
		call = call.PageToken(pageToken)
	}
	resp, err := call.Do()
	if err != nil {
		return nil, "", fmt.Errorf("playlistItems.list: %w", err)
	}

	videos := make([]Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item.Snippet == nil || item.Snippet.ResourceId == nil {
			continue
		}
		publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
		if err != nil {
			return nil, "", fmt.Errorf("parse publishedAt %q: %w", item.Snippet.PublishedAt, err)
		}
		videos = append(videos, Video{
			ID:          item.Snippet.ResourceId.VideoId,
			Title:       item.Snippet.Title,
			PublishedAt: publishedAt,
		})
	}
	return videos, resp.NextPageToken, nil
}

func (a *dataAPI) LiveDetails(ctx context.Context, videoIDs []string) (map[string]bool, error) {
	resp, err := a.svc.Videos.List([]string{"liveStreamingDetails"}).Id(videoIDs...).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("videos.list liveStreamingDetails: %w", err)
	}

	live := make(map[string]bool, len(resp.Items))
	for _, item := range resp.Items {
		live[item.Id] = item.LiveStreamingDetails != nil
	}
	return live, nil
}

func (a *dataAPI) VideoDetails(ctx context.Context, videoID string) (*Video, error) {
	resp, err := a.svc.Videos.List([]string{"snippet", "liveStreamingDetails"}).Id(videoID).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("videos.list: %w", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return nil, nil
	}

	item := resp.Items[0]
	publishedAt, err := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	if err != nil {
		return nil, fmt.Errorf("parse publishedAt %q: %w", item.Snippet.PublishedAt, err)
	}

	return &Video{
		ID:            videoID,
		Title:         item.Snippet.Title,
		PublishedAt:   publishedAt,
		ChannelID:     item.Snippet.ChannelId,
		IsLiveContent: item.LiveStreamingDetails != nil,
	}, nil
}

// ChannelHandle reverses a channel id to its handle. The custom URL
// usually carries the handle; the channel title is the fallback.
func (a *dataAPI) ChannelHandle(ctx context.Context, channelID string) (string, error) {
	resp, err := a.svc.Channels.List([]string{"snippet"}).Id(channelID).Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("channels.list snippet: %w", err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return "", nil
	}

	snippet := resp.Items[0].Snippet
	if snippet.CustomUrl != "" {
		if strings.HasPrefix(snippet.CustomUrl, "@") {
			return snippet.CustomUrl, nil
		}
		return "@" + snippet.CustomUrl, nil
	}
	return "@" + snippet.Title, nil
}
