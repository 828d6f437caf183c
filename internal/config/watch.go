package config

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// reloadOps are the events on the config file that trigger a reload. An
// atomic save (temp file renamed over the config) arrives as Create.
const reloadOps = fsnotify.Create | fsnotify.Write | fsnotify.Rename

// Watch calls onChange with the reloaded Config each time the file at path
// is saved, until ctx is cancelled. The parent directory is watched rather
// than the file so that rename-based saves keep being seen. A reload that
// fails is logged and the previous config stays in effect.
func Watch(ctx context.Context, path string, onChange func(Config)) error {
	target := filepath.Clean(path)
	if _, err := os.Stat(target); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch config dir: %w", err)
	}
	slog.Info("watching config for changes", "path", target)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target || event.Op&reloadOps == 0 {
				continue
			}

			cfg, err := Load(target)
			if err != nil {
				slog.Error("config reload failed, keeping previous config", "path", target, "op", event.Op.String(), "error", err)
				continue
			}
			slog.Info("config reloaded", "path", target)
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("config watcher error", "error", err)
		}
	}
}
