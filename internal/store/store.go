package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

const (
	transcriptsDir = "transcripts"
	summariesDir   = "summaries"
	// runLayout renders MMDDYY_HHMM run directory names.
	runLayout = "010206_1504"
)

var runDirPattern = regexp.MustCompile(`^\d{6}_\d{4}(_\d+)?$`)

func (s *implStore) NewRunRoot() (string, error) {
	base := s.now().Format(runLayout)

	name := base
	var root string
	for n := 1; ; n++ {
		candidate := filepath.Join(s.baseDir, name)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			root = candidate
			break
		}
		name = fmt.Sprintf("%s_%d", base, n)
	}

	for _, dir := range []string{root, filepath.Join(root, transcriptsDir), filepath.Join(root, summariesDir)} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create run directory %s: %w", dir, err)
		}
	}

	return root, nil
}

func (s *implStore) TranscriptPath(runRoot, videoID string) string {
	return filepath.Join(runRoot, transcriptsDir, videoID+"_transcript.txt")
}

func (s *implStore) SummaryPath(runRoot, videoID string) string {
	return filepath.Join(runRoot, summariesDir, videoID+"_summary.md")
}

func (s *implStore) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (s *implStore) FindPrior(videoID, excludeRoot string) (string, string, bool) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return "", "", false
	}

	for _, entry := range entries {
		if !entry.IsDir() || !runDirPattern.MatchString(entry.Name()) {
			continue
		}
		root := filepath.Join(s.baseDir, entry.Name())
		if root == excludeRoot {
			continue
		}

		transcriptPath := s.TranscriptPath(root, videoID)
		if !s.Exists(transcriptPath) {
			continue
		}
		summaryPath := s.SummaryPath(root, videoID)
		if !s.Exists(summaryPath) {
			summaryPath = ""
		}
		return transcriptPath, summaryPath, true
	}

	return "", "", false
}

func (s *implStore) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}
	return data, nil
}

func (s *implStore) Write(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	return nil
}

// Copy preserves byte content exactly; headers and timestamps inside the
// artifact are never rewritten.
func (s *implStore) Copy(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
