package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"captool/internal/config"
	"captool/internal/logger"
	"captool/pkg/executor"
)

type implOCR struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
	workDir  string
}

// New creates a new OCR instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) OCR {
	return &implOCR{
		cfg:      cfg,
		executor: exec,
		logger:   log,
		workDir:  filepath.Join(cfg.Paths.Temp, "captool-ocr"),
	}
}

// Run OCRs every page concurrently (bounded by ocr.workers) and unites
// the per-page PDFs, in page order, into the output document.
func (o *implOCR) Run(ctx context.Context, input, output string) error {
	pages, err := o.collectPages(ctx, input)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("no page images found at %s", input)
	}

	runDir := filepath.Join(o.workDir, "run-"+uuid.NewString())
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return fmt.Errorf("create work dir: %w", err)
	}
	defer os.RemoveAll(o.workDir)

	o.logger.Info(ctx, "OCR starting: %d pages, %d workers", len(pages), o.cfg.OCR.Workers)

	pagePDFs := make([]string, len(pages))
	sem := newSemaphore(o.cfg.OCR.Workers)
	var wg sync.WaitGroup

	for i, page := range pages {
		if err := sem.acquire(ctx); err != nil {
			wg.Wait()
			return err
		}
		wg.Add(1)
		go func(i int, page string) {
			defer wg.Done()
			defer sem.release()

			pdf, err := o.ocrPage(ctx, page, runDir, i)
			if err != nil {
				o.logger.Error(ctx, "Page %d (%s) failed, skipping: %v", i+1, filepath.Base(page), err)
				return
			}
			pagePDFs[i] = pdf
		}(i, page)
	}
	wg.Wait()

	var done []string
	for _, pdf := range pagePDFs {
		if pdf != "" {
			done = append(done, pdf)
		}
	}
	if len(done) == 0 {
		return fmt.Errorf("all %d pages failed OCR", len(pages))
	}
	if len(done) < len(pages) {
		o.logger.Warn(ctx, "%d of %d pages failed and were skipped", len(pages)-len(done), len(pages))
	}

	return o.unite(ctx, done, output)
}

// ocrPage runs tesseract on one page image, producing a one-page
// searchable PDF in the work directory.
func (o *implOCR) ocrPage(ctx context.Context, page, runDir string, index int) (string, error) {
	outBase := filepath.Join(runDir, fmt.Sprintf("page-%04d", index))

	if _, err := o.executor.Execute(ctx, o.cfg.OCR.TesseractPath, page, outBase, "pdf"); err != nil {
		return "", fmt.Errorf("tesseract: %w", err)
	}

	return outBase + ".pdf", nil
}

// unite concatenates the page PDFs into the final document.
func (o *implOCR) unite(ctx context.Context, pagePDFs []string, output string) error {
	if dir := filepath.Dir(output); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	args := append(append([]string{}, pagePDFs...), output)
	if _, err := o.executor.Execute(ctx, o.cfg.OCR.PDFUnitePath, args...); err != nil {
		return fmt.Errorf("pdfunite: %w", err)
	}

	o.logger.Info(ctx, "Searchable PDF written: %s (%s)", output, pageCount(len(pagePDFs)))
	return nil
}

func pageCount(n int) string {
	if n == 1 {
		return "1 page"
	}
	return fmt.Sprintf("%d pages", n)
}
