package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	filefetcher "github.com/0xalexb/varconf/config/fetcher/file"

	"github.com/spf13/cobra"
)

func newWatchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "watch FILE",
		Short: "Validate a configuration file every time it changes",
		Long: `Validate a configuration file once, then again on every write, until
interrupted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]

			v, err := opts.optionalValidator()
			if err != nil {
				return err
			}

			out := newPrinter(cmd.OutOrStdout())

			report := func(data []byte) {
				_, err := opts.load(file, staticFetcher(data), v)
				if err != nil {
					out.fail("%s: %v", file, err)

					return
				}

				out.ok("%s is valid", file)
			}

			data, err := os.ReadFile(file) // #nosec G304 -- path given by the user
			if err != nil {
				return fmt.Errorf("reading %q: %w", file, err)
			}

			report(data)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return filefetcher.Watch(ctx, file, report)
		},
	}
}
