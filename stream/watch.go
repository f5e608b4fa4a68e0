package stream

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

const reloadDebounce = 100 * time.Millisecond

// WatchConfig reloads the config at path once it has been quiet for a moment
// after a change and hands every config that loads cleanly to reload. It
// returns when ctx is done. Broken edits are logged and skipped.
func WatchConfig(ctx context.Context, path string, reload func(Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	defer w.Close()

	// Editors often replace the file, so watch its directory.
	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}
	log.Info().Str("path", path).Msg("watching config")

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			settle = time.After(reloadDebounce)
		case <-settle:
			settle = nil
			c, err := LoadConfig(path)
			if err != nil {
				log.Warn().Err(err).Msg("config reload failed")
				continue
			}
			log.Info().Str("path", path).Msg("config reloaded")
			reload(c)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("config watcher error")
		}
	}
}
