package main

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"captool/internal/ocr"
)

func newOCRCommand(cc *commandContext) *cobra.Command {
	var outputFlag string
	var workersFlag int

	cmd := &cobra.Command{
		Use:   "ocr <input>",
		Short: "OCR page images or a multipage TIFF into a searchable PDF",
		Example: `  captool ocr scans/ -o book.pdf
  captool ocr document.tif`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := cc.ensure()
			if err != nil {
				return err
			}
			if workersFlag > 0 {
				cfg.OCR.Workers = workersFlag
			}

			for _, bin := range []string{cfg.OCR.TesseractPath, cfg.OCR.PDFUnitePath} {
				if _, err := cc.exec.Look(bin); err != nil {
					return err
				}
			}

			input := args[0]
			output := outputFlag
			if output == "" {
				base := filepath.Base(input)
				output = strings.TrimSuffix(base, filepath.Ext(base)) + ".pdf"
			}

			return ocr.New(cfg, cc.exec, log).Run(cmd.Context(), input, output)
		},
	}

	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output PDF path (default: <input>.pdf)")
	cmd.Flags().IntVar(&workersFlag, "workers", 0, "Concurrent OCR workers (default: CPU count)")

	return cmd
}
