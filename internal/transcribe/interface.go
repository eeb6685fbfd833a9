package transcribe

import "context"

// Transcriber turns a local media file into a cleaned transcript.
type Transcriber interface {
	// Process extracts audio, runs whisper-cli, merges the caption
	// output, and returns the path of the written transcript.
	Process(ctx context.Context, mediaPath string) (string, error)
}
