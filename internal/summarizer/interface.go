package summarizer

import "context"

// Summarizer reads cleaned transcripts and produces LLM-generated
// markdown summaries, optionally rendered to docx as well.
type Summarizer interface {
	SummarizeAll(ctx context.Context, srcDir, destDir string, docx bool) error
}
