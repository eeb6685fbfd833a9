package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"captool/internal/config"
	"captool/internal/transcribe"
	"captool/internal/watcher"
)

func newWatchCommand(cc *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the input directory and transcribe new media files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := cc.ensure()
			if err != nil {
				return err
			}
			if err := transcribe.RequireModel(cfg); err != nil {
				return err
			}
			if err := ensureDirectories(cfg); err != nil {
				return fmt.Errorf("create directories: %w", err)
			}

			ctx := cmd.Context()
			tr := transcribe.New(cfg, cc.exec, log)

			handler := func(ctx context.Context, mediaPath string) error {
				if _, err := tr.Process(ctx, mediaPath); err != nil {
					return err
				}
				return archive(cfg, mediaPath)
			}

			w, err := watcher.New(cfg.Paths.Input, handler, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			log.Info(ctx, "Monitoring: %s", cfg.Paths.Input)
			log.Info(ctx, "Output: %s", cfg.Paths.Output)
			log.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	return cmd
}

func ensureDirectories(cfg *config.Config) error {
	for _, dir := range []string{cfg.Paths.Input, cfg.Paths.Output, cfg.Paths.Archived} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}
	return nil
}

// archive moves a processed media file out of the watched directory so
// it is not picked up again.
func archive(cfg *config.Config, mediaPath string) error {
	dest := filepath.Join(cfg.Paths.Archived, filepath.Base(mediaPath))
	if err := os.Rename(mediaPath, dest); err != nil {
		return fmt.Errorf("archive %s: %w", mediaPath, err)
	}
	return nil
}
