package transcribe

import (
	"fmt"

	"captool/internal/config"
	"captool/internal/logger"
	"captool/pkg/executor"
)

type implTranscriber struct {
	cfg      *config.Config
	executor executor.Executor
	logger   logger.Logger
}

// New creates a new Transcriber instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &implTranscriber{
		cfg:      cfg,
		executor: exec,
		logger:   log,
	}
}

// RequireModel checks the fatal precondition shared by every transcribe
// entry point: a whisper model must be configured.
func RequireModel(cfg *config.Config) error {
	if cfg.Whisper.ModelPath == "" {
		return fmt.Errorf("whisper model path not set: set WHISPER_MODEL or whisper.model_path in the config")
	}
	return nil
}
