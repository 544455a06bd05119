// Package yaml provides a YAML parser implementation for the config package.
//
// The parser walks the github.com/goccy/go-yaml AST and builds a tree.Node,
// keeping document order:
//
//   - mappings become child nodes;
//   - every item of a sequence becomes a separate child with the sequence's
//     key, which is how repeated options are written;
//   - plain scalars are typed by YAML and then sniffed (64K reads as 65536),
//     quoted scalars always stay strings;
//   - the "_value" key sets the value of a node that also has children.
//
// Anchors, aliases and "<<" merge keys are resolved.
//
// Usage:
//
//	root, err := yaml.NewParser().Parse(data)
package yaml
