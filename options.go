package varconf

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/0xalexb/varconf/config"
	filefetcher "github.com/0xalexb/varconf/config/fetcher/file"
	tomlparser "github.com/0xalexb/varconf/config/parser/toml"
	yamlparser "github.com/0xalexb/varconf/config/parser/yaml"
	"github.com/0xalexb/varconf/validator"

	"go.uber.org/fx"
)

// ErrUnsupportedFormat is returned for config files whose extension has no parser.
var ErrUnsupportedFormat = errors.New("unsupported config file format")

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogFormat string
	// Configs lists the names of the config trees added by WithConfigFile.
	Configs []string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithConfigFile adds a config module that loads fpath and provides the
// subtree at v's root, validated with defaults filled in, as a *tree.Node
// tagged `name:"<name>"`. The parser is chosen by extension: .yaml, .yml or
// .toml. A nil v provides the whole document unvalidated.
// Call multiple times with different names to load several files.
// The tree is loaded when the app is built and is available from App.Config.
func WithConfigFile(name, fpath string, v *validator.Validator) Option {
	return func(opts *Options) {
		parser, err := ParserFor(fpath)
		if err != nil {
			opts.Modules = append(opts.Modules, fx.Error(err))

			return
		}

		var (
			path string
			cv   config.Validator
		)

		if v != nil {
			path = v.Root()
			cv = v
		}

		opts.Modules = append(opts.Modules, config.NewModule(name, path, parser, filefetcher.NewFetcher(fpath), cv))
		opts.Configs = append(opts.Configs, name)
	}
}

// ParserFor returns the Fx constructor of the parser for a config file, chosen
// by its extension: .yaml, .yml or .toml.
func ParserFor(fpath string) (any, error) {
	switch strings.ToLower(filepath.Ext(fpath)) {
	case ".yaml", ".yml":
		return yamlparser.NewParser, nil
	case ".toml":
		return tomlparser.NewParser, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, fpath)
	}
}

// NewParser returns the parser for a config file, chosen like ParserFor.
func NewParser(fpath string) (config.Parser, error) {
	switch strings.ToLower(filepath.Ext(fpath)) {
	case ".yaml", ".yml":
		return yamlparser.NewParser(), nil
	case ".toml":
		return tomlparser.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, fpath)
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat sets the log output format: "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
