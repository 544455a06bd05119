package file

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange with the new contents of fpath every time the file is
// written or re-created, until ctx is done. The parent directory is watched so
// that editors saving through a rename are noticed.
//
// Watch blocks; run it in its own goroutine. It returns nil once ctx is done.
func Watch(ctx context.Context, fpath string, onChange func(data []byte)) error {
	cleanPath := filepath.Clean(fpath)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}

	defer func() { _ = watcher.Close() }()

	err = watcher.Add(filepath.Dir(cleanPath))
	if err != nil {
		return fmt.Errorf("watching %q: %w", cleanPath, err)
	}

	filename := filepath.Base(cleanPath)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Base(event.Name) != filename || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			slog.Debug("config file changed", slog.String("path", cleanPath), slog.String("event", event.Op.String()))

			data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned
			if err != nil {
				slog.Warn("reading changed config file", slog.String("path", cleanPath), slog.Any("error", err))

				continue
			}

			onChange(data)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}

			slog.Error("file watcher error", slog.String("path", cleanPath), slog.Any("error", err))
		}
	}
}
