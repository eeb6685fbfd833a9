package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"captool/internal/captions"
)

func newCleanCommand(cc *commandContext) *cobra.Command {
	var modeFlag string
	var outputFlag string

	cmd := &cobra.Command{
		Use:   "clean [file]",
		Short: "Clean a VTT subtitle track or transcript into merged text",
		Long: `Clean collapses the overlapping, incrementally growing caption
fragments ASR engines emit into one finalized line per utterance.
Subtitle-track input yields "<HH:MM:SS> <text>" lines; transcript input
yields cleaned text lines. With no file argument, input is read from
stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, _, err := cc.ensure()
			if err != nil {
				return err
			}

			filename := ""
			in := io.Reader(os.Stdin)
			if len(args) == 1 {
				filename = args[0]
				f, err := os.Open(filename)
				if err != nil {
					return fmt.Errorf("open input: %w", err)
				}
				defer f.Close()
				in = f
			}

			content, err := io.ReadAll(in)
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			out := io.Writer(os.Stdout)
			if outputFlag != "" {
				f, err := os.Create(outputFlag)
				if err != nil {
					return fmt.Errorf("create output: %w", err)
				}
				defer f.Close()
				out = f
			}

			return cleanTo(out, filename, string(content), modeFlag)
		},
	}

	cmd.Flags().StringVar(&modeFlag, "mode", "auto", "Input mode: auto, vtt or transcript")
	cmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Output file path (default: stdout)")

	return cmd
}

// cleanTo runs the selected cleaning mode over content and writes the
// result line by line.
func cleanTo(out io.Writer, filename, content, mode string) error {
	subtitle := false
	switch mode {
	case "vtt":
		subtitle = true
	case "transcript":
	case "auto":
		subtitle = captions.IsSubtitle(filename, content)
	default:
		return fmt.Errorf("unknown mode %q (want auto, vtt or transcript)", mode)
	}

	w := bufio.NewWriter(out)
	if subtitle {
		for line := range captions.Merge(captions.ParseVTT(strings.NewReader(content))) {
			if _, err := w.WriteString(line + "\n"); err != nil {
				return err
			}
		}
	} else {
		for line := range captions.CleanTranscript(strings.NewReader(content)) {
			if _, err := w.WriteString(line + "\n"); err != nil {
				return err
			}
		}
	}
	return w.Flush()
}
