package bridge

import "context"

// Bridge links Ollama models into the LM Studio model directory.
type Bridge interface {
	// Models enumerates the importable models in the Ollama store.
	Models(ctx context.Context) ([]Model, error)
	// LinkAll links every discovered model and reports the outcome.
	// Per-model failures are logged and skipped, not fatal.
	LinkAll(ctx context.Context, kind LinkKind, overwrite bool) (Report, error)
}

// Report summarizes a LinkAll run.
type Report struct {
	Linked  int
	Skipped int
	Failed  int
}
