package transcribe

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"captool/internal/captions"
)

// Process runs the full pipeline for one media file: extract audio, run
// whisper-cli, merge the caption output, and write the cleaned
// transcript into the output directory.
func (t *implTranscriber) Process(ctx context.Context, mediaPath string) (string, error) {
	startTime := time.Now()

	if err := RequireModel(t.cfg); err != nil {
		return "", err
	}

	t.logger.Info(ctx, "Processing: %s", mediaPath)

	audioPath, err := t.extractAudio(ctx, mediaPath)
	if err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}
	defer t.cleanupTempFile(ctx, audioPath)

	vttPath, err := t.runWhisper(ctx, audioPath)
	if err != nil {
		return "", fmt.Errorf("transcribe: %w", err)
	}
	defer t.cleanupTempFile(ctx, vttPath)

	outPath, err := t.writeTranscript(vttPath, mediaPath)
	if err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}

	t.logger.Info(ctx, "Transcript ready in %s: %s", time.Since(startTime).Round(time.Millisecond), outPath)
	return outPath, nil
}

// writeTranscript merges the raw VTT into one line per utterance and
// writes it next to the configured output directory, named after the
// original media file.
func (t *implTranscriber) writeTranscript(vttPath, mediaPath string) (string, error) {
	in, err := os.Open(vttPath)
	if err != nil {
		return "", fmt.Errorf("open captions: %w", err)
	}
	defer in.Close()

	if err := os.MkdirAll(t.cfg.Paths.Output, 0755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	base := filepath.Base(mediaPath)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".txt"
	outPath := filepath.Join(t.cfg.Paths.Output, name)

	out, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create transcript: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for line := range captions.Merge(captions.ParseVTT(in)) {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return "", fmt.Errorf("write transcript: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		return "", fmt.Errorf("flush transcript: %w", err)
	}

	return outPath, nil
}

// cleanupTempFile removes a pipeline temp file, logging on failure.
func (t *implTranscriber) cleanupTempFile(ctx context.Context, path string) {
	if err := os.Remove(path); err != nil {
		t.logger.Warn(ctx, "Failed to clean up temp file %s: %v", path, err)
	} else {
		t.logger.Debug(ctx, "Cleaned up temp file: %s", path)
	}
}
