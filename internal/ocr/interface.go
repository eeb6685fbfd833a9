package ocr

import "context"

// OCR converts page images into one searchable PDF.
type OCR interface {
	// Run OCRs the pages found at input (a directory of page images, a
	// multipage TIFF, or a single image) and concatenates the per-page
	// PDFs into output. Failed pages are reported and skipped.
	Run(ctx context.Context, input, output string) error
}
