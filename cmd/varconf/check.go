package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate configuration files against the schema",
		Long: `Validate configuration files.

Each file is parsed and the --root section is checked against the schema:
unknown options, missing required options, wrong types, bounds and choices.
Without --schema only the syntax is checked.

Examples:
  varconf check config.yaml
  varconf check --schema schema.yaml --root server prod.yaml staging.toml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.optionalValidator()
			if err != nil {
				return err
			}

			out := newPrinter(cmd.OutOrStdout())
			failed := 0

			for _, file := range args {
				_, err := opts.loadFile(file, v)
				if err != nil {
					out.fail("%s: %v", file, err)

					failed++

					continue
				}

				out.ok("%s is valid", file)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d files failed validation", failed, len(args))
			}

			return nil
		},
	}
}
