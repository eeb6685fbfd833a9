package watcher

import "context"

// Watcher monitors the input directory for new media files.
type Watcher interface {
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler is called once per detected media file.
type EventHandler func(ctx context.Context, filePath string) error
