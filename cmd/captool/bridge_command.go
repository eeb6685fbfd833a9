package main

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"captool/internal/bridge"
)

func newBridgeCommand(cc *commandContext) *cobra.Command {
	var listFlag bool
	var kindFlag string
	var overwriteFlag bool

	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Link Ollama models into the LM Studio model directory",
		Long: `Bridge walks the Ollama model store, finds the GGUF weights blob of
every installed model, and links it under the LM Studio model directory
so both tools share one copy of the weights.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := cc.ensure()
			if err != nil {
				return err
			}

			b := bridge.New(cfg, log)
			ctx := cmd.Context()

			if listFlag {
				models, err := b.Models(ctx)
				if err != nil {
					return err
				}
				renderModelTable(models)
				return nil
			}

			kind := cfg.Bridge.LinkKind
			if kindFlag != "" {
				kind = kindFlag
			}
			linkKind, err := bridge.ParseLinkKind(kind)
			if err != nil {
				return err
			}

			report, err := b.LinkAll(ctx, linkKind, overwriteFlag)
			if err != nil {
				return err
			}

			fmt.Printf("linked %d, skipped %d, failed %d\n", report.Linked, report.Skipped, report.Failed)
			if report.Failed > 0 {
				return fmt.Errorf("%d models failed to link", report.Failed)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&listFlag, "list", false, "List discovered models without linking")
	cmd.Flags().StringVar(&kindFlag, "kind", "", "Link kind: soft, hard or auto")
	cmd.Flags().BoolVar(&overwriteFlag, "overwrite", false, "Replace existing links")

	return cmd
}

func renderModelTable(models []bridge.Model) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Model", "Namespace", "Size", "Blob"})
	for _, m := range models {
		t.AppendRow(table.Row{m.DisplayName(), m.Namespace, formatBytes(m.SizeBytes), m.BlobPath})
	}
	t.Render()
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for v := n / unit; v >= unit; v /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
