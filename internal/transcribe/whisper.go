package transcribe

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// whisperArgs builds the whisper-cli invocation for one audio file.
// -ovtt selects VTT output, which the caption merge engine consumes.
func (t *implTranscriber) whisperArgs(audioPath, outputPrefix string) []string {
	args := []string{
		"-m", t.cfg.Whisper.ModelPath,
		"-f", audioPath,
		"-ovtt",
		"-l", t.cfg.Whisper.Language,
		"-t", strconv.Itoa(t.cfg.Whisper.Threads),
		"--output-file", outputPrefix,
	}
	if t.cfg.Whisper.Prompt != "" {
		args = append(args, "--prompt", t.cfg.Whisper.Prompt)
	}
	return args
}

// runWhisper transcribes the audio and returns the VTT path.
func (t *implTranscriber) runWhisper(ctx context.Context, audioPath string) (string, error) {
	outputPrefix := strings.TrimSuffix(audioPath, filepath.Ext(audioPath))

	t.logger.Info(ctx, "Transcribing with %d threads: %s", t.cfg.Whisper.Threads, audioPath)

	if _, err := t.executor.Execute(ctx, t.cfg.Whisper.BinaryPath, t.whisperArgs(audioPath, outputPrefix)...); err != nil {
		return "", fmt.Errorf("whisper transcribe: %w", err)
	}

	vttPath := outputPrefix + ".vtt"
	t.logger.Info(ctx, "Transcription completed: %s", vttPath)
	return vttPath, nil
}
