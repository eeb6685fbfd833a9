package bridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"captool/internal/config"
	"captool/internal/logger"
)

// writeModel lays out a minimal Ollama store entry: one manifest plus
// its weights blob.
func writeModel(t *testing.T, ollamaDir, namespace, name, tag, digest string) {
	t.Helper()

	manifestDir := filepath.Join(ollamaDir, "manifests", "registry.ollama.ai", namespace, name)
	if err := os.MkdirAll(manifestDir, 0755); err != nil {
		t.Fatal(err)
	}
	doc := fmt.Sprintf(`{
  "schemaVersion": 2,
  "layers": [
    {"mediaType": "application/vnd.ollama.image.template", "digest": "sha256:aaaa", "size": 10},
    {"mediaType": %q, "digest": "sha256:%s", "size": 128}
  ]
}`, modelMediaType, digest)
	if err := os.WriteFile(filepath.Join(manifestDir, tag), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	blobDir := filepath.Join(ollamaDir, "blobs")
	if err := os.MkdirAll(blobDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(blobDir, "sha256-"+digest), []byte("gguf-bytes"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	ollamaDir := t.TempDir()
	writeModel(t, ollamaDir, "library", "llama3.2", "latest", "feed01")
	writeModel(t, ollamaDir, "library", "qwen2.5", "7b", "feed02")

	models, err := Discover(ollamaDir)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(models) != 2 {
		t.Fatalf("Discover() found %d models, want 2", len(models))
	}

	byName := map[string]Model{}
	for _, m := range models {
		byName[m.DisplayName()] = m
	}
	m, ok := byName["llama3.2:latest"]
	if !ok {
		t.Fatalf("llama3.2:latest not discovered: %v", models)
	}
	if m.Namespace != "library" {
		t.Errorf("Namespace = %q, want library", m.Namespace)
	}
	if m.BlobPath != filepath.Join(ollamaDir, "blobs", "sha256-feed01") {
		t.Errorf("BlobPath = %q", m.BlobPath)
	}
	if m.SizeBytes != 128 {
		t.Errorf("SizeBytes = %d, want 128", m.SizeBytes)
	}
}

func TestDiscoverSkipsBrokenEntries(t *testing.T) {
	ollamaDir := t.TempDir()
	writeModel(t, ollamaDir, "library", "good", "latest", "feed03")

	// Manifest referencing a blob that is not on disk.
	missing := filepath.Join(ollamaDir, "manifests", "registry.ollama.ai", "library", "missing")
	if err := os.MkdirAll(missing, 0755); err != nil {
		t.Fatal(err)
	}
	doc := fmt.Sprintf(`{"layers":[{"mediaType":%q,"digest":"sha256:gone","size":1}]}`, modelMediaType)
	if err := os.WriteFile(filepath.Join(missing, "latest"), []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	// Unparsable manifest.
	broken := filepath.Join(ollamaDir, "manifests", "registry.ollama.ai", "library", "broken")
	if err := os.MkdirAll(broken, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(broken, "latest"), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	models, err := Discover(ollamaDir)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if len(models) != 1 || models[0].Name != "good" {
		t.Errorf("Discover() = %v, want only the intact model", models)
	}
}

func TestDiscoverMissingStore(t *testing.T) {
	if _, err := Discover(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Error("Discover() should fail when the store does not exist")
	}
}

func TestLink(t *testing.T) {
	ollamaDir := t.TempDir()
	writeModel(t, ollamaDir, "library", "llama3.2", "latest", "feed04")
	models, err := Discover(ollamaDir)
	if err != nil || len(models) != 1 {
		t.Fatalf("Discover() = %v, %v", models, err)
	}
	m := models[0]

	destDir := t.TempDir()
	dest, err := Link(m, destDir, LinkSoft, false)
	if err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	want := filepath.Join(destDir, "library", "llama3.2", "llama3.2-latest.gguf")
	if dest != want {
		t.Errorf("Link() dest = %q, want %q", dest, want)
	}
	target, err := os.Readlink(dest)
	if err != nil {
		t.Fatalf("Readlink() error = %v", err)
	}
	if target != m.BlobPath {
		t.Errorf("link target = %q, want %q", target, m.BlobPath)
	}

	// Second run without overwrite reports ErrExists.
	if _, err := Link(m, destDir, LinkSoft, false); !errors.Is(err, ErrExists) {
		t.Errorf("Link() err = %v, want ErrExists", err)
	}

	// Overwrite replaces the link.
	if _, err := Link(m, destDir, LinkSoft, true); err != nil {
		t.Errorf("Link() with overwrite error = %v", err)
	}
}

func TestLinkHard(t *testing.T) {
	ollamaDir := t.TempDir()
	writeModel(t, ollamaDir, "library", "phi4", "latest", "feed05")
	models, _ := Discover(ollamaDir)
	m := models[0]

	dest, err := Link(m, t.TempDir(), LinkHard, false)
	if err != nil {
		t.Fatalf("Link() error = %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(data) != "gguf-bytes" {
		t.Errorf("hard link content = %q", data)
	}
}

func TestParseLinkKind(t *testing.T) {
	for _, valid := range []string{"soft", "hard", "auto"} {
		if _, err := ParseLinkKind(valid); err != nil {
			t.Errorf("ParseLinkKind(%q) error = %v", valid, err)
		}
	}
	if _, err := ParseLinkKind("junction"); err == nil {
		t.Error("ParseLinkKind should reject unknown kinds")
	}
}

func TestLinkAll(t *testing.T) {
	ollamaDir := t.TempDir()
	destDir := t.TempDir()
	writeModel(t, ollamaDir, "library", "llama3.2", "latest", "feed06")
	writeModel(t, ollamaDir, "library", "qwen2.5", "7b", "feed07")

	t.Setenv("OLLAMA_MODELS", ollamaDir)
	t.Setenv("LMSTUDIO_MODELS", destDir)
	cfg := &config.Config{}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	b := New(cfg, logger.NewWithWriter(&bytes.Buffer{}, "error"))

	report, err := b.LinkAll(context.Background(), LinkSoft, false)
	if err != nil {
		t.Fatalf("LinkAll() error = %v", err)
	}
	if report.Linked != 2 || report.Failed != 0 {
		t.Errorf("report = %+v, want 2 linked", report)
	}

	// Re-running without overwrite skips everything.
	report, err = b.LinkAll(context.Background(), LinkSoft, false)
	if err != nil {
		t.Fatalf("LinkAll() error = %v", err)
	}
	if report.Skipped != 2 || report.Linked != 0 {
		t.Errorf("report = %+v, want 2 skipped", report)
	}
}
