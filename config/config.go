package config

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/0xalexb/varconf/tree"
)

// ErrEmptyName is returned when a config module is created without a name.
var ErrEmptyName = errors.New("config name must not be empty")

// Parser turns raw configuration data into a tree.
// See config/parser/yaml and config/parser/toml.
type Parser interface {
	Parse(data []byte) (*tree.Node, error)
}

// DataFetcher defines an interface for reading configuration data.
type DataFetcher interface {
	Fetch() ([]byte, error)
}

// Validator checks a configuration subtree and optionally fills in defaults.
// *validator.Validator implements it.
type Validator interface {
	Validate(node *tree.Node, fillDefaults bool) error
}

// Provider returns a function that reads and parses configuration data, selects
// the subtree at path and validates it with v, filling in defaults.
//
// Validation runs on a copy of the subtree, so on failure nothing is half
// filled. The returned node remembers path as its root path. A nil v skips
// validation.
func Provider(path string, v Validator) func(Parser, DataFetcher) (*tree.Node, error) {
	return func(parser Parser, dataSourcer DataFetcher) (*tree.Node, error) {
		data, err := dataSourcer.Fetch()
		if err != nil {
			return nil, fmt.Errorf("reading data error: %w", err)
		}

		doc, err := parser.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		node := doc
		if path != "" {
			node, err = doc.GetChild(path)
			if err != nil {
				return nil, fmt.Errorf("selecting %q: %w", path, err)
			}
		}

		node.SetRootPath(path)

		if v == nil {
			return node, nil
		}

		filled := node.Clone()

		err = v.Validate(filled, true)
		if err != nil {
			return nil, fmt.Errorf("validating error: %w", err)
		}

		if !filled.Equal(node) {
			slog.Info("defaults applied", slog.String("path", path))
		}

		return filled, nil
	}
}
