package script

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the script whenever its file is written or replaced,
// until ctx is done. Reload failures are logged and the previous script
// keeps running. Watch blocks; run it on its own goroutine.
func (r *Runner) Watch(ctx context.Context) error {
	if r.path == "" {
		return ErrNoPath
	}

	target, err := filepath.Abs(r.path)
	if err != nil {
		return fmt.Errorf("resolving script path: %w", err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating script watcher: %w", err)
	}
	defer w.Close()

	// Watch the directory: editors often replace the file by rename, which
	// drops a watch on the file itself.
	if err := w.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(target), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			r.reloadFromWatch()

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn().Err(err).Msg("script watcher error")
		}
	}
}

func (r *Runner) reloadFromWatch() {
	err := r.Reload()
	if err != nil {
		r.logger.Error().Err(err).Str("path", r.path).Msg("script reload failed")
	} else {
		r.logger.Info().Str("path", r.path).Msg("script reloaded")
	}
	if r.onReload != nil {
		r.onReload(err)
	}
}
