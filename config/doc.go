// Package config loads configuration documents into trees and validates them.
//
// The package uses an interface-based design with three extension points:
//   - Parser: turns raw data into a *tree.Node (config/parser/yaml, config/parser/toml)
//   - DataFetcher: retrieves raw config data (config/fetcher/file)
//   - Validator: checks a subtree and fills in defaults (*validator.Validator)
//
// # Path Selection
//
// Provider takes the path of the subtree to load, written with "/" as the
// separator:
//
//	"api/permissions" -> the permissions node under api
//	""                -> the entire document
//
// The selected node remembers the path as its root path, so schema lookups and
// error messages use fully qualified names.
//
// # Defaults
//
// The validator runs with default filling on a copy of the subtree. The copy
// replaces the parsed subtree only when validation succeeds, so a rejected
// document never comes back half filled.
//
// # Fx
//
// NewModule wraps Provider in an Fx module that provides the node under a name
// tag:
//
//	config.NewModule("api", "services/api", yaml.NewParser, file.NewFetcher("config.yaml"), v)
//
//	fx.Invoke(fx.Annotate(func(api *tree.Node) { ... }, fx.ParamTags(`name:"api"`)))
package config
