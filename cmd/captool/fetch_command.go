package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"captool/internal/fetch"
)

func newFetchCommand(cc *commandContext) *cobra.Command {
	var destFlag string

	cmd := &cobra.Command{
		Use:   "fetch <url> [curl-args...]",
		Short: "Download media via yt-dlp, translating curl-style flags",
		Long: `Fetch hands a URL to yt-dlp. Any arguments after the URL are
curl-style header/auth flags (the kind a browser's "copy as curl"
produces) and are translated to their yt-dlp equivalents, so an
authenticated request can be replayed as a download.`,
		Example: `  captool fetch "https://example.com/ep1"
  captool fetch "https://example.com/ep1" -H "Authorization: Bearer tok" -b "session=abc"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := cc.ensure()
			if err != nil {
				return err
			}
			if _, err := cc.exec.Look(cfg.Fetch.BinaryPath); err != nil {
				return err
			}

			dest := destFlag
			if dest == "" {
				dest = "."
			}

			f := fetch.New(cfg, cc.exec, log)
			path, err := f.Download(cmd.Context(), args[0], dest, args[1:])
			if err != nil {
				return err
			}

			fmt.Println(path)
			return nil
		},
	}

	// Everything after the URL belongs to the curl translator, not cobra.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&destFlag, "dest", "d", "", "Download directory (default: current directory)")

	return cmd
}
