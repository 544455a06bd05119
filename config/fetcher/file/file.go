package file

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Fetcher implements config.DataFetcher for a configuration file.
// The file is read at construction time and cached until Reload.
type Fetcher struct {
	filepath string

	mu   sync.RWMutex
	data []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read or if the path points to a directory.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		data, err := read(cleanPath)
		if err != nil {
			return nil, err
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path of the file.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the cached configuration data.
func (f *Fetcher) Fetch() ([]byte, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Reload reads the file again and replaces the cached data. On error the
// previous data is kept.
func (f *Fetcher) Reload() error {
	data, err := read(f.filepath)
	if err != nil {
		return err
	}

	f.mu.Lock()
	f.data = data
	f.mu.Unlock()

	return nil
}

func read(cleanPath string) ([]byte, error) {
	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return data, nil
}
