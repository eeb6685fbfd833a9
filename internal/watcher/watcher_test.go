package watcher

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"captool/internal/logger"
)

func TestIsMediaFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"clip.mp4", true},
		{"CLIP.MKV", true},
		{"audio.mp3", true},
		{"voice.WAV", true},
		{"podcast.opus", true},
		{"notes.txt", false},
		{"archive.zip", false},
		{"noext", false},
	}

	for _, tt := range tests {
		if got := isMediaFile(tt.path); got != tt.want {
			t.Errorf("isMediaFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestWatcherDispatchesNewMedia(t *testing.T) {
	dir := t.TempDir()

	var mu sync.Mutex
	var handled []string
	handler := func(ctx context.Context, path string) error {
		mu.Lock()
		defer mu.Unlock()
		handled = append(handled, filepath.Base(path))
		return nil
	}

	w, err := New(dir, handler, logger.NewWithWriter(&bytes.Buffer{}, "error"), 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer w.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Let the watch loop come up before writing.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "talk.mp3"), []byte("audio"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("text"), 0644); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(5 * time.Second)
	for {
		mu.Lock()
		n := len(handled)
		mu.Unlock()
		if n > 0 {
			break
		}
		select {
		case <-deadline:
			t.Fatal("handler never called for new media file")
		case <-time.After(50 * time.Millisecond):
		}
	}

	cancel()
	if err := <-done; !errors.Is(err, context.Canceled) {
		t.Errorf("Start() returned %v, want context.Canceled", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(handled) != 1 || handled[0] != "talk.mp3" {
		t.Errorf("handled = %v, want [talk.mp3]", handled)
	}
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"), nil, logger.NewWithWriter(&bytes.Buffer{}, "error"), 1)
	if err == nil {
		t.Error("New() should fail for a missing directory")
	}
}
