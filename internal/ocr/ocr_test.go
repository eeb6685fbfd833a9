package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"captool/internal/config"
	"captool/internal/logger"
)

// fakeExecutor simulates tesseract and pdfunite. Calls are recorded
// under a lock because pages run concurrently.
type fakeExecutor struct {
	mu        sync.Mutex
	calls     [][]string
	failPages map[string]bool
}

func (f *fakeExecutor) record(name string, args []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]string{name}, args...))
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.ExecuteInDir(ctx, "", name, args...)
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	f.record(name, args)

	switch name {
	case "tesseract":
		page := filepath.Base(args[0])
		if f.failPages[page] {
			return "", fmt.Errorf("command 'tesseract' failed: exit status 1")
		}
		if err := os.WriteFile(args[1]+".pdf", []byte("%PDF"), 0644); err != nil {
			return "", err
		}
	case "pdfunite":
		if err := os.WriteFile(args[len(args)-1], []byte("%PDF-united"), 0644); err != nil {
			return "", err
		}
	}
	return "", nil
}

func (f *fakeExecutor) Look(name string) (string, error) { return "/usr/bin/" + name, nil }

func (f *fakeExecutor) callsTo(name string) [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out [][]string
	for _, c := range f.calls {
		if c[0] == name {
			out = append(out, c)
		}
	}
	return out
}

func testService(t *testing.T, exec *fakeExecutor) OCR {
	t.Helper()
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	cfg.OCR.Workers = 3
	cfg.Paths.Temp = t.TempDir()
	return New(cfg, exec, logger.NewWithWriter(&bytes.Buffer{}, "error"))
}

func writePages(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, n := range names {
		if err := os.WriteFile(filepath.Join(dir, n), []byte("img"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRunDirectory(t *testing.T) {
	exec := &fakeExecutor{}
	svc := testService(t, exec)
	dir := writePages(t, "scan-002.jpg", "scan-001.jpg", "notes.txt", "scan-003.png")
	output := filepath.Join(t.TempDir(), "out.pdf")

	if err := svc.Run(context.Background(), dir, output); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if calls := exec.callsTo("tesseract"); len(calls) != 3 {
		t.Errorf("tesseract calls = %d, want 3 (non-image skipped)", len(calls))
	}

	unite := exec.callsTo("pdfunite")
	if len(unite) != 1 {
		t.Fatalf("pdfunite calls = %d, want 1", len(unite))
	}
	// Last arg is the output; preceding args are pages in page order.
	args := unite[0][1:]
	if args[len(args)-1] != output {
		t.Errorf("pdfunite output = %q, want %q", args[len(args)-1], output)
	}
	var prev string
	for _, p := range args[:len(args)-1] {
		if prev != "" && p < prev {
			t.Errorf("pages out of order: %v", args)
		}
		prev = p
	}

	if _, err := os.Stat(output); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestRunSkipsFailedPages(t *testing.T) {
	exec := &fakeExecutor{failPages: map[string]bool{"scan-002.jpg": true}}
	svc := testService(t, exec)
	dir := writePages(t, "scan-001.jpg", "scan-002.jpg", "scan-003.jpg")
	output := filepath.Join(t.TempDir(), "out.pdf")

	if err := svc.Run(context.Background(), dir, output); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	unite := exec.callsTo("pdfunite")
	if len(unite) != 1 {
		t.Fatalf("pdfunite calls = %d, want 1", len(unite))
	}
	if pages := unite[0][1 : len(unite[0])-1]; len(pages) != 2 {
		t.Errorf("united pages = %v, want 2 surviving pages", pages)
	}
}

func TestRunAllPagesFailed(t *testing.T) {
	exec := &fakeExecutor{failPages: map[string]bool{"scan-001.jpg": true}}
	svc := testService(t, exec)
	dir := writePages(t, "scan-001.jpg")

	err := svc.Run(context.Background(), dir, filepath.Join(t.TempDir(), "out.pdf"))
	if err == nil || !strings.Contains(err.Error(), "failed OCR") {
		t.Errorf("Run() error = %v, want all-pages-failed", err)
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	exec := &fakeExecutor{}
	svc := testService(t, exec)

	err := svc.Run(context.Background(), t.TempDir(), "out.pdf")
	if err == nil {
		t.Error("Run() should fail when no page images exist")
	}
}

func TestRunMissingInput(t *testing.T) {
	exec := &fakeExecutor{}
	svc := testService(t, exec)

	err := svc.Run(context.Background(), filepath.Join(t.TempDir(), "absent"), "out.pdf")
	if err == nil {
		t.Error("Run() should fail for a missing input")
	}
}
