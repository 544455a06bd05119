package main

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/varconf"
	"github.com/0xalexb/varconf/logging"

	"github.com/spf13/cobra"
)

// options are the flags shared by all commands.
type options struct {
	schemaPath string
	root       string
	logLevel   string
	logFormat  string
	fill       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "varconf",
		Short: "Validate and inspect hierarchical configuration files",
		Long: `varconf loads YAML or TOML configuration files into a tree and checks
them against a schema of typed options.

Schema-aware commands take the schema with --schema and the path of the
configuration section it describes with --root:
  varconf check --schema schema.yaml --root server config.yaml
  varconf dump  --schema schema.yaml --root server config.yaml`,
		Version:       fmt.Sprintf("%s (commit: %s, built: %s)", varconf.Version, varconf.Commit, varconf.CompiledAt),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := logging.NewLogger(logging.LoggerConfig{Level: opts.logLevel, Format: opts.logFormat}, cmd.ErrOrStderr())
			slog.SetDefault(logger)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVarP(&opts.schemaPath, "schema", "s", "", "schema file: a YAML list of options")
	flags.StringVarP(&opts.root, "root", "r", "", "path of the configuration section the schema describes")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
	flags.StringVar(&opts.logFormat, "log-format", logging.FormatText, "log format: text or json")
	flags.BoolVar(&opts.fill, "fill-defaults", true, "write schema defaults into the loaded tree")

	cmd.AddCommand(
		newCheckCmd(opts),
		newDumpCmd(opts),
		newGetCmd(opts),
		newUsageCmd(opts),
		newWatchCmd(opts),
	)

	return cmd
}
