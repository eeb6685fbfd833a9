package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"captool/internal/summarizer"
)

func newSummarizeCommand(cc *commandContext) *cobra.Command {
	var destFlag string
	var docxFlag bool

	cmd := &cobra.Command{
		Use:   "summarize [transcript-dir]",
		Short: "Summarize cleaned transcripts with Gemini",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := cc.ensure()
			if err != nil {
				return err
			}

			srcDir := cfg.Paths.Output
			if len(args) == 1 {
				srcDir = args[0]
			}
			destDir := destFlag
			if destDir == "" {
				destDir = filepath.Join(srcDir, "summaries")
			}

			s := summarizer.New(cfg.Gemini.APIKeys, cfg.Gemini.Model, log)
			return s.SummarizeAll(cmd.Context(), srcDir, destDir, docxFlag)
		},
	}

	cmd.Flags().StringVar(&destFlag, "dest", "", "Summary output directory (default: <src>/summaries)")
	cmd.Flags().BoolVar(&docxFlag, "docx", false, "Also render each summary as docx")

	return cmd
}
