package fetch

import "context"

// Fetcher downloads remote media through yt-dlp.
type Fetcher interface {
	// Download fetches url into destDir and returns the path of the
	// downloaded file. curlArgs are curl-style header/auth flags,
	// translated via Translate before invocation.
	Download(ctx context.Context, url, destDir string, curlArgs []string) (string, error)
}
