package transcribe

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// extractAudio converts the input media to 16kHz mono PCM WAV, the
// format whisper-cli expects.
func (t *implTranscriber) extractAudio(ctx context.Context, mediaPath string) (string, error) {
	audioPath := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath)) + "_audio.wav"

	t.logger.Info(ctx, "Extracting audio: %s", mediaPath)

	args := []string{
		"-i", mediaPath,
		"-vn",
		"-ar", "16000",
		"-ac", "1",
		"-c:a", "pcm_s16le",
		"-y",
		audioPath,
	}

	if _, err := t.executor.Execute(ctx, t.cfg.FFmpeg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("ffmpeg extract audio: %w", err)
	}

	t.logger.Debug(ctx, "Audio extracted: %s", audioPath)
	return audioPath, nil
}
