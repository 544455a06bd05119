package main

import (
	"github.com/0xalexb/varconf/tree"

	"github.com/spf13/cobra"
)

func newDumpCmd(opts *options) *cobra.Command {
	dumpOpts := tree.DefaultDumpOptions()

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print the loaded configuration tree",
		Long: `Print the --root section of a configuration file as an indented tree,
with schema defaults filled in when --schema is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.optionalValidator()
			if err != nil {
				return err
			}

			node, err := opts.loadFile(args[0], v)
			if err != nil {
				return err
			}

			return node.Dump(cmd.OutOrStdout(), dumpOpts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&dumpOpts.ShowTypes, "types", dumpOpts.ShowTypes, "annotate keys with value kinds")
	flags.BoolVar(&dumpOpts.ShowBraces, "braces", dumpOpts.ShowBraces, "wrap child blocks in braces")
	flags.IntVar(&dumpOpts.TabWidth, "tab", dumpOpts.TabWidth, "indent width")

	return cmd
}
