package fetch

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"captool/internal/config"
	"captool/internal/logger"
	"captool/pkg/executor"
)

type implFetcher struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Fetcher instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Fetcher {
	return &implFetcher{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// Download runs yt-dlp with the translated curl flags and returns the
// final file path, which yt-dlp reports via --print after_move:filepath.
func (f *implFetcher) Download(ctx context.Context, url, destDir string, curlArgs []string) (string, error) {
	translated, err := Translate(curlArgs)
	if err != nil {
		return "", fmt.Errorf("translate curl args: %w", err)
	}

	args := []string{
		"--no-progress",
		"--no-simulate",
		"--print", "after_move:filepath",
		"-f", f.cfg.Fetch.Format,
		"-o", filepath.Join(destDir, "%(title)s.%(ext)s"),
	}
	args = append(args, translated...)
	args = append(args, url)

	f.logger.Info(ctx, "Downloading: %s", url)

	out, err := f.executor.Execute(ctx, f.cfg.Fetch.BinaryPath, args...)
	if err != nil {
		return "", fmt.Errorf("yt-dlp download: %w", err)
	}

	path := strings.TrimSpace(out)
	if path == "" {
		return "", fmt.Errorf("yt-dlp reported no output file for %s", url)
	}

	f.logger.Info(ctx, "Downloaded: %s", path)
	return path, nil
}

// IsURL reports whether the transcribe/fetch input is a remote URL
// rather than a local file path.
func IsURL(input string) bool {
	return strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://")
}
