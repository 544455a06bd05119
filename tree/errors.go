package tree

import (
	"errors"
	"fmt"
)

// ErrPathSyntax is returned for malformed paths.
var ErrPathSyntax = errors.New("invalid path")

// ErrNotFound is returned when an addressed node does not exist.
var ErrNotFound = errors.New("path not found")

// PathError describes a malformed path.
type PathError struct {
	Path   string
	Reason string
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %q: %s", e.Path, e.Reason)
}

// Unwrap returns ErrPathSyntax.
func (e *PathError) Unwrap() error { return ErrPathSyntax }

// NotFoundError reports a path that does not resolve to a node.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("cannot get child: path %q not found", e.Path)
}

// Unwrap returns ErrNotFound.
func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// ConversionError reports a node value that could not be converted to the
// requested type. Err wraps scalar.ErrConversion.
type ConversionError struct {
	Path string
	Type string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("path %q: conversion of data to type %s failed: %v", e.Path, e.Type, e.Err)
}

func (e *ConversionError) Unwrap() error { return e.Err }
