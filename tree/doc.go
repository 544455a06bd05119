// Package tree provides the configuration tree: nodes that carry one scalar
// value and an ordered list of named children.
//
// Child names are not unique. Repeated names model array-like or anonymous
// sections, and lookups by plain name return the first match in insertion order.
//
// # Paths
//
// Nodes are addressed by separator-delimited paths (DefaultSeparator is '/').
// A segment may carry a bracketed filter that is matched against a child's own
// value rather than its name:
//
//	servers/srv[B]/port   -> the "srv" child whose value renders as "B"
//	servers/[B]           -> any child of "servers" whose value renders as "B"
//
// Filters select nodes for reading and navigation. They are rejected on the
// final segment of a write. Writes create missing intermediate nodes, and an
// intermediate created for a filtered segment takes the filter text as its value
// so that the same path matches it afterwards.
//
// # Errors
//
// Malformed paths fail with a *PathError (ErrPathSyntax), absent nodes with a
// *NotFoundError (ErrNotFound), and failed value conversions with a
// *ConversionError (scalar.ErrConversion). The *Optional accessors and the
// accessors that take a default swallow only the not-found condition.
//
// A tree is not safe for concurrent mutation.
package tree
