package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/drewacevedo/ytsummary/internal/logger"
)

var testLog = logger.New("error")

func fixedStore(t *testing.T, at time.Time) (*implStore, string) {
	t.Helper()
	dir := t.TempDir()
	return &implStore{
		baseDir: dir,
		logger:  testLog,
		now:     func() time.Time { return at },
	}, dir
}

func TestNewRunRootCreatesSubdirs(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC)
	s, dir := fixedStore(t, at)

	root, err := s.NewRunRoot()
	if err != nil {
		t.Fatalf("NewRunRoot() error = %v", err)
	}
	if filepath.Base(root) != "031425_0926" {
		t.Errorf("run root = %s, want 031425_0926", filepath.Base(root))
	}
	if filepath.Dir(root) != dir {
		t.Errorf("run root parent = %s, want %s", filepath.Dir(root), dir)
	}

	for _, sub := range []string{"transcripts", "summaries"} {
		if info, err := os.Stat(filepath.Join(root, sub)); err != nil || !info.IsDir() {
			t.Errorf("missing %s sub-area: %v", sub, err)
		}
	}
}

func TestNewRunRootCollisionSuffix(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 0, 0, time.UTC)
	s, _ := fixedStore(t, at)

	first, err := s.NewRunRoot()
	if err != nil {
		t.Fatalf("NewRunRoot() error = %v", err)
	}
	second, err := s.NewRunRoot()
	if err != nil {
		t.Fatalf("NewRunRoot() second error = %v", err)
	}
	third, err := s.NewRunRoot()
	if err != nil {
		t.Fatalf("NewRunRoot() third error = %v", err)
	}

	if filepath.Base(first) != "031425_0926" {
		t.Errorf("first = %s", filepath.Base(first))
	}
	if filepath.Base(second) != "031425_0926_1" {
		t.Errorf("second = %s, want 031425_0926_1", filepath.Base(second))
	}
	if filepath.Base(third) != "031425_0926_2" {
		t.Errorf("third = %s, want 031425_0926_2", filepath.Base(third))
	}
}

func TestArtifactPaths(t *testing.T) {
	s, _ := fixedStore(t, time.Now())

	tp := s.TranscriptPath("/runs/031425_0926", "V123")
	if tp != filepath.Join("/runs/031425_0926", "transcripts", "V123_transcript.txt") {
		t.Errorf("TranscriptPath() = %s", tp)
	}

	sp := s.SummaryPath("/runs/031425_0926", "V123")
	if sp != filepath.Join("/runs/031425_0926", "summaries", "V123_summary.md") {
		t.Errorf("SummaryPath() = %s", sp)
	}
}

// seedRun creates a prior run directory with optional transcript and
// summary files for one video id.
func seedRun(t *testing.T, baseDir, runName, videoID string, withTranscript, withSummary bool) string {
	t.Helper()
	root := filepath.Join(baseDir, runName)
	for _, sub := range []string{"transcripts", "summaries"} {
		if err := os.MkdirAll(filepath.Join(root, sub), 0755); err != nil {
			t.Fatal(err)
		}
	}
	if withTranscript {
		path := filepath.Join(root, "transcripts", videoID+"_transcript.txt")
		if err := os.WriteFile(path, []byte("transcript of "+videoID), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if withSummary {
		path := filepath.Join(root, "summaries", videoID+"_summary.md")
		if err := os.WriteFile(path, []byte("summary of "+videoID), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func TestFindPrior(t *testing.T) {
	s, dir := fixedStore(t, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC))

	seedRun(t, dir, "031425_0926", "V123", true, false)
	seedRun(t, dir, "031425_1830", "V456", true, true)

	current, err := s.NewRunRoot()
	if err != nil {
		t.Fatal(err)
	}

	t.Run("transcript without summary", func(t *testing.T) {
		tp, sp, found := s.FindPrior("V123", current)
		if !found {
			t.Fatal("FindPrior() found = false")
		}
		if filepath.Base(tp) != "V123_transcript.txt" {
			t.Errorf("transcript path = %s", tp)
		}
		if sp != "" {
			t.Errorf("summary path = %q, want empty", sp)
		}
	})

	t.Run("transcript with summary", func(t *testing.T) {
		tp, sp, found := s.FindPrior("V456", current)
		if !found || tp == "" {
			t.Fatal("FindPrior() did not find V456")
		}
		if filepath.Base(sp) != "V456_summary.md" {
			t.Errorf("summary path = %s", sp)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, _, found := s.FindPrior("V999", current); found {
			t.Error("FindPrior() found = true for unknown id")
		}
	})
}

func TestFindPriorExcludesCurrentRun(t *testing.T) {
	s, _ := fixedStore(t, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC))

	current, err := s.NewRunRoot()
	if err != nil {
		t.Fatal(err)
	}
	// Only the current run holds the transcript.
	path := s.TranscriptPath(current, "V123")
	if err := os.WriteFile(path, []byte("text"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, _, found := s.FindPrior("V123", current); found {
		t.Error("FindPrior() must not report the current run")
	}
}

func TestFindPriorIgnoresForeignDirectories(t *testing.T) {
	s, dir := fixedStore(t, time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC))

	// A directory not matching the run naming convention is skipped even
	// if it happens to contain a matching file.
	seedRun(t, dir, "notarun", "V123", true, false)

	current, err := s.NewRunRoot()
	if err != nil {
		t.Fatal(err)
	}

	if _, _, found := s.FindPrior("V123", current); found {
		t.Error("FindPrior() matched a non-run directory")
	}
}

func TestCopyPreservesBytes(t *testing.T) {
	s, dir := fixedStore(t, time.Now())

	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	content := []byte("Video Title: exact bytes\n" + "-------\n\nbody")
	if err := os.WriteFile(src, content, 0644); err != nil {
		t.Fatal(err)
	}

	if err := s.Copy(src, dst); err != nil {
		t.Fatalf("Copy() error = %v", err)
	}

	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != string(content) {
		t.Errorf("copied content = %q, want %q", got, content)
	}
}

func TestWriteReadExists(t *testing.T) {
	s, dir := fixedStore(t, time.Now())

	path := filepath.Join(dir, "artifact.txt")
	if s.Exists(path) {
		t.Error("Exists() = true before write")
	}

	if err := s.Write(path, []byte("hello")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if !s.Exists(path) {
		t.Error("Exists() = false after write")
	}

	data, err := s.Read(path)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if string(data) != "hello" {
		t.Errorf("Read() = %q, want hello", data)
	}
}
