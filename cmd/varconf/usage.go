package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsageCmd(opts *options) *cobra.Command {
	var indent string

	cmd := &cobra.Command{
		Use:   "usage",
		Short: "Document the options of a schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := opts.loadValidator()
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), v.Usage(indent))

			return err
		},
	}

	cmd.Flags().StringVar(&indent, "indent", "", "prefix of every line")

	return cmd
}
