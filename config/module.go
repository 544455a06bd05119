package config

import (
	"fmt"

	"go.uber.org/fx"
)

// NameTag returns the Fx tag under which NewModule provides the tree of the
// module called name.
func NameTag(name string) string {
	return fmt.Sprintf(`name:"%s"`, name)
}

// NewModule returns an Fx module that provides the validated configuration
// subtree at path as a *tree.Node named name.
//
// parser and fetcher are constructors in the Fx sense, e.g. yaml.NewParser and
// file.NewFetcher(fpath). v may be nil to skip validation.
func NewModule(name, path string, parser, fetcher any, v Validator) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	tag := NameTag(name)

	return fx.Module(name,
		fx.Provide(
			fx.Private,
			fx.Annotate(parser, fx.As(new(Parser))),
			fx.Annotate(fetcher, fx.As(new(DataFetcher))),
		),
		fx.Provide(
			fx.Annotate(Provider(path, v), fx.ResultTags(tag)),
		),
	)
}
