package main

import (
	"fmt"

	"github.com/0xalexb/varconf/scalar"
	"github.com/0xalexb/varconf/tree"
	"github.com/0xalexb/varconf/validator"

	"github.com/spf13/cobra"
)

func newGetCmd(opts *options) *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "get FILE PATH",
		Short: "Print one value of a configuration file",
		Long: `Print the value at PATH, relative to the --root section. PATH may use
value filters, e.g. upstream[backup]/weight. With --schema an absent value
prints the option's default.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := opts.optionalValidator()
			if err != nil {
				return err
			}

			node, err := opts.loadFile(args[0], v)
			if err != nil {
				return err
			}

			var text string

			switch kind {
			case "value":
				text, err = lookup[scalar.Value](v, node, args[1])
			case "string":
				text, err = lookup[string](v, node, args[1])
			case "int":
				text, err = lookup[int64](v, node, args[1])
			case "float":
				text, err = lookup[float64](v, node, args[1])
			case "bool":
				text, err = lookup[bool](v, node, args[1])
			default:
				return fmt.Errorf("unknown type %q: want value, string, int, float or bool", kind)
			}

			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), text)

			return err
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "value", "convert to: value, string, int, float or bool")

	return cmd
}

func lookup[T scalar.Type](v *validator.Validator, node *tree.Node, path string) (string, error) {
	var (
		val T
		err error
	)

	if v != nil {
		val, err = validator.Get[T](v, path, node)
	} else {
		val, err = tree.Get[T](node, path)
	}

	if err != nil {
		return "", err
	}

	return fmt.Sprint(val), nil
}
