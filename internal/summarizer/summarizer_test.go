package summarizer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drewacevedo/ytsummary/internal/logger"
)

var testLog = logger.New("error")

func TestBuildPrompt(t *testing.T) {
	got := buildPrompt("Summarize the following transcript.", "hello world")
	want := "Summarize the following transcript.\n\n---\n\nhello world"
	if got != want {
		t.Errorf("buildPrompt() = %q, want %q", got, want)
	}
}

func TestLoadPrompt(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.txt")
	if err := os.WriteFile(path, []byte("  summarize this  \n"), 0644); err != nil {
		t.Fatal(err)
	}

	s := New("key", "gemini-2.5-flash", path, testLog).(*implSummarizer)
	got, err := s.loadPrompt()
	if err != nil {
		t.Fatalf("loadPrompt() error = %v", err)
	}
	if got != "summarize this" {
		t.Errorf("loadPrompt() = %q, want trimmed template", got)
	}
}

func TestLoadPromptMissingFile(t *testing.T) {
	s := New("key", "gemini-2.5-flash", filepath.Join(t.TempDir(), "absent.txt"), testLog).(*implSummarizer)

	_, err := s.loadPrompt()
	if !errors.Is(err, ErrPromptNotFound) {
		t.Errorf("loadPrompt() error = %v, want ErrPromptNotFound", err)
	}
}

func TestWriteDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "summary.docx")

	markdown := strings.Join([]string{
		"# Overview",
		"",
		"Some **bold** statement.",
		"- first point",
		"- second point",
		"1. ordered item",
		"---",
	}, "\n")

	if err := WriteDocx("Video Title", markdown, path); err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("docx file missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("docx file is empty")
	}
}
