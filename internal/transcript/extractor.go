package transcript

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoSubtitles reports that no subtitle payload exists in the preferred
// language. It is a normal outcome, not a request failure.
var ErrNoSubtitles = errors.New("no subtitles available")

// Extract downloads auto-generated or human subtitles with yt-dlp into a
// per-call temp dir (removed on exit either way) and reduces the VTT
// payload to plain text.
func (e *implExtractor) Extract(ctx context.Context, videoID string) (string, error) {
	tempDir, err := os.MkdirTemp("", "ytsummary-subs-*")
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(tempDir)

	videoURL := "https://www.youtube.com/watch?v=" + videoID
	args := []string{
		"--write-subs",
		"--write-auto-subs",
		"--sub-langs", e.language,
		"--skip-download",
		"--quiet",
		"--no-warnings",
		"-o", filepath.Join(tempDir, "%(id)s.%(ext)s"),
		videoURL,
	}

	e.logger.Debug(ctx, "Fetching subtitles for %s", videoID)
	if _, err := e.executor.Execute(ctx, "yt-dlp", args...); err != nil {
		return "", fmt.Errorf("yt-dlp subtitles: %w", err)
	}

	payload, err := readSubtitleFile(tempDir, videoID)
	if err != nil {
		return "", err
	}
	if payload == "" {
		return "", fmt.Errorf("%w for video %s", ErrNoSubtitles, videoID)
	}

	return ParseVTT(payload), nil
}

// readSubtitleFile returns the first .vtt file matching the video id,
// or empty when none was produced.
func readSubtitleFile(dir, videoID string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("list subtitle dir: %w", err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".vtt") || !strings.Contains(name, videoID) {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", fmt.Errorf("read subtitle file: %w", err)
		}
		return string(data), nil
	}

	return "", nil
}
