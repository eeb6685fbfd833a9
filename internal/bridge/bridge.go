package bridge

import (
	"context"
	"errors"
	"fmt"

	"captool/internal/config"
	"captool/internal/logger"
)

type implBridge struct {
	cfg    *config.Config
	logger logger.Logger
}

// New creates a new Bridge instance
func New(cfg *config.Config, log logger.Logger) Bridge {
	return &implBridge{
		cfg:    cfg,
		logger: log,
	}
}

func (b *implBridge) Models(ctx context.Context) ([]Model, error) {
	dir, err := OllamaDir(b.cfg.Bridge.OllamaDir)
	if err != nil {
		return nil, err
	}

	b.logger.Debug(ctx, "Ollama model store: %s", dir)

	models, err := Discover(dir)
	if err != nil {
		return nil, fmt.Errorf("discover models: %w", err)
	}
	return models, nil
}

func (b *implBridge) LinkAll(ctx context.Context, kind LinkKind, overwrite bool) (Report, error) {
	var report Report

	models, err := b.Models(ctx)
	if err != nil {
		return report, err
	}
	if len(models) == 0 {
		b.logger.Info(ctx, "No models found in the Ollama store")
		return report, nil
	}

	destDir, err := LMStudioDir(b.cfg.Bridge.LMStudioDir)
	if err != nil {
		return report, err
	}

	b.logger.Info(ctx, "Linking %d models into %s", len(models), destDir)

	for _, m := range models {
		dest, err := Link(m, destDir, kind, overwrite)
		switch {
		case errors.Is(err, ErrExists):
			b.logger.Info(ctx, "Already linked, skipping: %s", m.DisplayName())
			report.Skipped++
		case err != nil:
			b.logger.Error(ctx, "Failed to link %s: %v", m.DisplayName(), err)
			report.Failed++
		default:
			b.logger.Info(ctx, "Linked %s -> %s", m.DisplayName(), dest)
			report.Linked++
		}
	}

	return report, nil
}
