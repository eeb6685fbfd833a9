package executor

import "context"

// Executor runs the external collaborators (ffmpeg, whisper-cli, yt-dlp,
// tesseract, pdfunite, tiffsplit) captool shells out to.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
	Look(name string) (string, error)
}
