// Package logging provides structured logging using Go's standard library log/slog.
// It writes JSON by default, or logfmt-style text for terminals, and integrates
// with Uber's Fx dependency injection framework through the root package.
package logging
