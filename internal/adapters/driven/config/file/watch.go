package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/issuefeed/internal/logger"
)

// Watch reloads the store whenever the configuration file changes, until
// ctx is done. onReload, if non-nil, is called after every reload attempt
// with its result.
//
// The parent directory is watched rather than the file itself, so
// editors that replace the file on save are handled, as is a file created
// after startup.
func (s *ConfigStore) Watch(ctx context.Context, onReload func(error)) error {
	dir := filepath.Dir(s.filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != filepath.Clean(s.filePath) {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
					continue
				}
				err := s.Load()
				if err != nil {
					logger.Warn("Reloading %s: %v", s.filePath, err)
				} else {
					logger.Info("Reloaded %s", s.filePath)
				}
				if onReload != nil {
					onReload(err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watching %s: %v", s.filePath, err)
			}
		}
	}()

	return nil
}
