package bridge

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// LinkKind selects how model blobs are exposed to LM Studio.
type LinkKind string

const (
	// LinkSoft creates symbolic links (the default).
	LinkSoft LinkKind = "soft"
	// LinkHard creates hard links; requires both stores on one filesystem.
	LinkHard LinkKind = "hard"
	// LinkAuto tries a hard link first and falls back to a symlink.
	LinkAuto LinkKind = "auto"
)

// ErrExists is returned by Link when the destination already exists and
// overwrite was not requested.
var ErrExists = errors.New("link destination already exists")

// ParseLinkKind validates a user-supplied link kind.
func ParseLinkKind(s string) (LinkKind, error) {
	switch LinkKind(s) {
	case LinkSoft, LinkHard, LinkAuto:
		return LinkKind(s), nil
	}
	return "", fmt.Errorf("unknown link kind %q (want soft, hard or auto)", s)
}

// DestPath is where the model lands under the LM Studio model dir:
// <dir>/<namespace>/<name>/<name>-<tag>.gguf, the layout LM Studio
// indexes as "<namespace>/<name>".
func (m Model) DestPath(lmstudioDir string) string {
	return filepath.Join(lmstudioDir, m.Namespace, m.Name, fmt.Sprintf("%s-%s.gguf", m.Name, m.Tag))
}

// Link creates the requested link for one model and returns the
// destination path. An existing destination is replaced when overwrite
// is set and reported as ErrExists otherwise.
func Link(m Model, lmstudioDir string, kind LinkKind, overwrite bool) (string, error) {
	dest := m.DestPath(lmstudioDir)

	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return "", fmt.Errorf("create model directory: %w", err)
	}

	if _, err := os.Lstat(dest); err == nil {
		if !overwrite {
			return dest, ErrExists
		}
		if err := os.Remove(dest); err != nil {
			return "", fmt.Errorf("remove existing link: %w", err)
		}
	}

	switch kind {
	case LinkHard:
		if err := os.Link(m.BlobPath, dest); err != nil {
			return "", fmt.Errorf("hard link: %w", err)
		}
	case LinkAuto:
		if err := os.Link(m.BlobPath, dest); err != nil {
			if err := os.Symlink(m.BlobPath, dest); err != nil {
				return "", fmt.Errorf("symlink fallback: %w", err)
			}
		}
	default:
		if err := os.Symlink(m.BlobPath, dest); err != nil {
			return "", fmt.Errorf("symlink: %w", err)
		}
	}

	return dest, nil
}
