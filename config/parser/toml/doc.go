// Package toml provides a TOML parser implementation for the config package.
//
// Documents are decoded with github.com/BurntSushi/toml and converted to a
// tree.Node. Key order follows the document. Each element of an array, and
// each [[table]] of an array of tables, becomes a separate child named after
// the array, so repeated options are written as arrays. The "_value" key sets
// the value of a table node. Date and time values are kept as RFC 3339 text.
package toml
