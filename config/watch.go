package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"corona/field"
)

// Watch reloads the preset whenever the file changes and delivers the new
// parameters on the returned channel. The channel holds at most one
// pending value; a newer reload replaces an unconsumed older one. The
// watcher stops when ctx is cancelled.
//
// The parent directory is watched rather than the file itself, because
// editors typically replace the file on save.
func Watch(ctx context.Context, path string, log *slog.Logger) (<-chan field.Params, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return nil, err
	}

	target := filepath.Clean(path)
	out := make(chan field.Params, 1)

	go func() {
		defer w.Close()
		defer close(out)

		// Save events arrive in bursts; reload once per burst.
		debounce := time.NewTimer(0)
		if !debounce.Stop() {
			<-debounce.C
		}

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != target {
					continue
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
					continue
				}
				debounce.Reset(100 * time.Millisecond)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("preset watch", "err", err)
			case <-debounce.C:
				p, err := Load(path)
				if err != nil {
					log.Warn("preset reload failed", "path", path, "err", err)
					continue
				}
				// Replace any unconsumed value.
				select {
				case <-out:
				default:
				}
				out <- p
				log.Info("preset reloaded", "path", path)
			}
		}
	}()

	return out, nil
}
