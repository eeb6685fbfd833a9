package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/google/uuid"
)

var pageExtensions = []string{".jpg", ".jpeg", ".png", ".tif", ".tiff", ".bmp"}

func isPageImage(name string) bool {
	return slices.Contains(pageExtensions, strings.ToLower(filepath.Ext(name)))
}

// collectPages resolves the input into an ordered list of page image
// files. Directories are listed and filtered by extension; a multipage
// TIFF is split into a work directory first. Page order is sorted
// filename order.
func (o *implOCR) collectPages(ctx context.Context, input string) ([]string, error) {
	info, err := os.Stat(input)
	if err != nil {
		return nil, fmt.Errorf("stat input: %w", err)
	}

	if info.IsDir() {
		entries, err := os.ReadDir(input)
		if err != nil {
			return nil, fmt.Errorf("read input dir: %w", err)
		}
		var pages []string
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			if isPageImage(e.Name()) {
				pages = append(pages, filepath.Join(input, e.Name()))
			}
		}
		slices.Sort(pages)
		return pages, nil
	}

	ext := strings.ToLower(filepath.Ext(input))
	if ext == ".tif" || ext == ".tiff" {
		return o.splitTIFF(ctx, input)
	}
	if isPageImage(input) {
		return []string{input}, nil
	}
	return nil, fmt.Errorf("unsupported input %q (want a page-image directory, a TIFF, or a page image)", input)
}

// splitTIFF explodes a multipage TIFF into single-page files under the
// work directory. tiffsplit names pages with a generation-ordered
// alphabetic suffix, so sorted order is page order.
func (o *implOCR) splitTIFF(ctx context.Context, input string) ([]string, error) {
	dir := filepath.Join(o.workDir, "split-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create split dir: %w", err)
	}

	abs, err := filepath.Abs(input)
	if err != nil {
		return nil, fmt.Errorf("resolve input: %w", err)
	}

	o.logger.Info(ctx, "Splitting multipage TIFF: %s", input)

	if _, err := o.executor.ExecuteInDir(ctx, dir, o.cfg.OCR.TiffSplitPath, abs, "page_"); err != nil {
		return nil, fmt.Errorf("tiffsplit: %w", err)
	}

	pages, err := filepath.Glob(filepath.Join(dir, "page_*"))
	if err != nil {
		return nil, fmt.Errorf("list split pages: %w", err)
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("tiffsplit produced no pages for %s", input)
	}
	slices.Sort(pages)
	return pages, nil
}
