package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"captool/internal/fetch"
	"captool/internal/transcribe"
)

func newTranscribeCommand(cc *commandContext) *cobra.Command {
	var outputFlag string
	var languageFlag string
	var modelFlag string
	var headerFlags []string

	cmd := &cobra.Command{
		Use:   "transcribe <file-or-url>",
		Short: "Transcribe a media file (or URL) into a cleaned transcript",
		Example: `  captool transcribe lecture.mp4
  captool transcribe interview.wav -o transcripts/
  captool transcribe "https://example.com/talk" -H "Authorization: Bearer tok"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := cc.ensure()
			if err != nil {
				return err
			}
			if modelFlag != "" {
				cfg.Whisper.ModelPath = modelFlag
			}
			if languageFlag != "" {
				cfg.Whisper.Language = languageFlag
			}
			if outputFlag != "" {
				cfg.Paths.Output = outputFlag
			}

			// Fatal preconditions up front, before any download.
			if err := transcribe.RequireModel(cfg); err != nil {
				return err
			}
			for _, bin := range []string{cfg.FFmpeg.BinaryPath, cfg.Whisper.BinaryPath} {
				if _, err := cc.exec.Look(bin); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			input := args[0]

			if fetch.IsURL(input) {
				if _, err := cc.exec.Look(cfg.Fetch.BinaryPath); err != nil {
					return err
				}
				destDir := filepath.Join(cfg.Paths.Temp, "captool-fetch-"+uuid.NewString())
				if err := os.MkdirAll(destDir, 0755); err != nil {
					return fmt.Errorf("create download dir: %w", err)
				}
				defer os.RemoveAll(destDir)

				f := fetch.New(cfg, cc.exec, log)
				downloaded, err := f.Download(ctx, input, destDir, headerCurlArgs(headerFlags))
				if err != nil {
					return err
				}
				input = downloaded
			}

			tr := transcribe.New(cfg, cc.exec, log)
			outPath, err := tr.Process(ctx, input)
			if err != nil {
				return err
			}

			fmt.Println(outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Transcript output directory")
	cmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Spoken language hint for whisper")
	cmd.Flags().StringVar(&modelFlag, "model", "", "Whisper model path (overrides WHISPER_MODEL)")
	cmd.Flags().StringArrayVarP(&headerFlags, "header", "H", nil, "HTTP header for URL inputs (curl style, repeatable)")

	return cmd
}

// headerCurlArgs rebuilds -H pairs so the fetch translator sees the
// same shape a pasted curl command has.
func headerCurlArgs(headers []string) []string {
	var out []string
	for _, h := range headers {
		out = append(out, "-H", h)
	}
	return out
}
