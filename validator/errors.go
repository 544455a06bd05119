package validator

import (
	"errors"
	"fmt"
)

// ErrSchema is returned for any configuration that violates its schema.
var ErrSchema = errors.New("schema violation")

// ErrRootMismatch is returned when a path does not lie under the validator root.
var ErrRootMismatch = errors.New("sub-path not found in root path")

// SchemaError reports a schema violation at a fully qualified path.
type SchemaError struct {
	Path   string
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("config error at %q: %s", e.Path, e.Reason)
}

// Unwrap returns ErrSchema.
func (e *SchemaError) Unwrap() error { return ErrSchema }

func schemaErrorf(path, format string, args ...any) *SchemaError {
	return &SchemaError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// reason is a violation found below the option-check boundary, before the
// offending entry's locator is known.
type reason string

func (r reason) Error() string { return string(r) }
