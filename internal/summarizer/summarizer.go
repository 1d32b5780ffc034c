package summarizer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

const (
	promptSeparator = "\n\n---\n\n"
	maxOutputTokens = 4096
	temperature     = 0.3
)

// ErrPromptNotFound reports a missing prompt template file.
var ErrPromptNotFound = errors.New("prompt file not found")

// Summarize sends the prompt template and transcript as one request and
// returns the first completion candidate's text. Sampling is near
// deterministic and output length bounded.
func (s *implSummarizer) Summarize(ctx context.Context, transcript string) (string, error) {
	template, err := s.loadPrompt()
	if err != nil {
		return "", err
	}
	prompt := buildPrompt(template, transcript)

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	cfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](temperature),
		MaxOutputTokens: maxOutputTokens,
	}
	result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from model %s", s.model)
	}

	var text strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text.WriteString(part.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("empty response from model %s", s.model)
	}

	return text.String(), nil
}

// buildPrompt concatenates the template, a fixed separator, and the
// transcript into one request payload.
func buildPrompt(template, transcript string) string {
	return template + promptSeparator + transcript
}

func (s *implSummarizer) loadPrompt() (string, error) {
	data, err := os.ReadFile(s.promptPath)
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrPromptNotFound, s.promptPath)
	}
	if err != nil {
		return "", fmt.Errorf("read prompt %s: %w", s.promptPath, err)
	}
	return strings.TrimSpace(string(data)), nil
}
