package catalog

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the catalog from path whenever the file changes. It runs
// until ctx is cancelled. A failed reload is logged and the previous
// catalog stays in place.
//
// The parent directory is watched rather than the file so that atomic
// saves (write a temp file, rename it over path) keep being seen.
func (c *Catalog) Watch(ctx context.Context, path string, logger *slog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	path = filepath.Clean(path)
	if err = watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	logger.Info("catalog: watching for changes", slog.String("path", path))

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			doc, err := Load(path)
			if err != nil {
				logger.Error("catalog: reload failed, keeping previous catalog",
					slog.String("path", path), slog.Any("error", err))
				continue
			}
			c.Replace(doc)
			logger.Info("catalog: reloaded", slog.String("path", path),
				slog.Int("briefs", len(doc.Briefs)), slog.Int("patterns", len(doc.Patterns)))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("catalog: watcher error", slog.Any("error", err))
		}
	}
}
