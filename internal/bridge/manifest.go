package bridge

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// modelMediaType marks the manifest layer holding the GGUF weights.
const modelMediaType = "application/vnd.ollama.image.model"

// Model is one importable model found in the Ollama store.
type Model struct {
	Namespace string // registry namespace, usually "library"
	Name      string
	Tag       string
	BlobPath  string // absolute path of the GGUF blob
	SizeBytes int64
}

// DisplayName returns the familiar "name:tag" form.
func (m Model) DisplayName() string {
	return m.Name + ":" + m.Tag
}

// manifest is the OCI-style document Ollama writes per model tag. Only
// the layer list matters here; unknown fields are ignored.
type manifest struct {
	Layers []struct {
		MediaType string `json:"mediaType"`
		Digest    string `json:"digest"`
		Size      int64  `json:"size"`
	} `json:"layers"`
}

// Discover walks <ollamaDir>/manifests and returns every model whose
// GGUF blob is present on disk. Manifests that fail to parse or that
// point at missing blobs are skipped, not fatal: one broken model must
// not block the rest of the import.
func Discover(ollamaDir string) ([]Model, error) {
	manifestsDir := filepath.Join(ollamaDir, "manifests")
	if _, err := os.Stat(manifestsDir); err != nil {
		return nil, fmt.Errorf("ollama manifests directory: %w", err)
	}

	var models []Model
	err := filepath.WalkDir(manifestsDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(manifestsDir, path)
		if err != nil {
			return err
		}
		// Layout: <registry>/<namespace>/<model>/<tag>
		parts := strings.Split(rel, string(filepath.Separator))
		if len(parts) != 4 {
			return nil
		}

		m, ok := readManifest(ollamaDir, path)
		if !ok {
			return nil
		}
		m.Namespace = parts[1]
		m.Name = parts[2]
		m.Tag = parts[3]
		models = append(models, m)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk manifests: %w", err)
	}

	return models, nil
}

// readManifest parses one manifest file and locates its weights blob.
func readManifest(ollamaDir, path string) (Model, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Model{}, false
	}

	var doc manifest
	if err := json.Unmarshal(data, &doc); err != nil {
		return Model{}, false
	}

	for _, layer := range doc.Layers {
		if layer.MediaType != modelMediaType {
			continue
		}
		digest, ok := strings.CutPrefix(layer.Digest, "sha256:")
		if !ok {
			return Model{}, false
		}
		blob := filepath.Join(ollamaDir, "blobs", "sha256-"+digest)
		if _, err := os.Stat(blob); err != nil {
			return Model{}, false
		}
		return Model{BlobPath: blob, SizeBytes: layer.Size}, true
	}

	return Model{}, false
}
