package storage

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"focuscycle/internal/settings"

	"github.com/fsnotify/fsnotify"
)

const reloadDebounce = 200 * time.Millisecond

// WatchSettingsFile calls onChange with freshly loaded settings whenever
// configPath is written, created or renamed into place. It watches the
// parent directory so editors that replace the file are picked up. Watch
// returns when ctx is done.
func WatchSettingsFile(ctx context.Context, configPath string, logger *slog.Logger, onChange func(settings.Settings)) error {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create settings watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(configPath)); err != nil {
		return fmt.Errorf("watch settings dir: %w", err)
	}

	target := filepath.Clean(configPath)
	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				debounce = time.After(reloadDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("settings watcher", "error", err)
		case <-debounce:
			debounce = nil
			prefs, err := LoadSettingsFile(configPath)
			if err != nil {
				logger.Warn("reload settings", "path", configPath, "error", err)
				continue
			}
			logger.Debug("settings reloaded", "path", configPath)
			onChange(prefs)
		}
	}
}
