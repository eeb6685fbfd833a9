package summarizer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"google.golang.org/genai"
)

const summaryPrompt = `You are summarizing the transcript of a recording. Write a detailed
markdown summary:

- Start with a one-sentence heading describing the topic.
- List every main point or step in order of appearance.
- Expand on each point, keeping important caveats and warnings.
- Use headings, bullet points, and bold for key terms.
- End with an "Important notes" section if anything needs emphasis.

Transcript:
---
%s
---`

// SummarizeAll reads every transcript from srcDir, asks Gemini for a
// summary, and writes one .md (and optionally .docx) per transcript
// into destDir. Per-file failures are logged and skipped.
func (s *implSummarizer) SummarizeAll(ctx context.Context, srcDir, destDir string, docx bool) error {
	if len(s.apiKeys) == 0 {
		return fmt.Errorf("no Gemini API keys configured: set GEMINI_API_KEYS or gemini.api_keys")
	}

	files, err := s.discoverTranscripts(srcDir)
	if err != nil {
		return fmt.Errorf("discover transcripts: %w", err)
	}
	if len(files) == 0 {
		s.logger.Info(ctx, "No transcripts found in %s", srcDir)
		return nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	s.logger.Info(ctx, "Found %d transcripts to summarize", len(files))

	successCount := 0
	failCount := 0

	for i, path := range files {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(files), name)

		content, err := os.ReadFile(path)
		if err != nil {
			s.logger.Error(ctx, "Failed to read %s: %v", path, err)
			failCount++
			continue
		}

		summary, err := s.callGemini(ctx, string(content))
		if err != nil {
			s.logger.Error(ctx, "Failed to summarize %s: %v", name, err)
			failCount++
			continue
		}

		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
			name,
			time.Now().Format("2006-01-02 15:04"),
			strings.TrimSpace(summary),
		)

		mdPath := filepath.Join(destDir, name+".md")
		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			s.logger.Error(ctx, "Failed to write %s: %v", mdPath, err)
			failCount++
			continue
		}

		if docx {
			docxPath := filepath.Join(destDir, name+".docx")
			if err := markdownToDocx(name, summary, docxPath); err != nil {
				s.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
			}
		}

		s.logger.Info(ctx, "[DONE] %s -> %s", name, mdPath)
		successCount++
	}

	s.logger.Info(ctx, "Summary complete: %d success, %d failed", successCount, failCount)
	return nil
}

// callGemini sends the transcript to Gemini and returns the summary.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) callGemini(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, transcript)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

// discoverTranscripts lists the .txt transcripts the transcribe and
// clean commands produce.
func (s *implSummarizer) discoverTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		if strings.ToLower(filepath.Ext(e.Name())) == ".txt" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
