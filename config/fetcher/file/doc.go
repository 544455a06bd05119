// Package file provides a file-based DataFetcher implementation for the config package.
//
// This package reads configuration data from files on the filesystem.
// It implements the config.DataFetcher interface, returning raw bytes
// for subsequent parsing.
//
// The file is read at construction time and cached, meaning subsequent calls
// to Fetch() return the same data without re-reading the filesystem until
// Reload is called.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.yaml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
//
// # Watching
//
// Watch reports every write of a file until its context is done. Call
// Fetcher.Reload from the callback, or feed the new bytes straight to a parser:
//
//	go file.Watch(ctx, "/path/to/config.yaml", func(data []byte) {
//	    root, err := yaml.NewParser().Parse(data)
//	    // ...
//	})
package file
