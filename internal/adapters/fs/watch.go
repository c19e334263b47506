package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long Watch waits after the last event before
// reporting a change. Save produces a create and a rename in quick succession.
const DefaultDebounce = 100 * time.Millisecond

// Watch reports changes to the history file until ctx is done.
// The directory is watched rather than the file so that atomic replaces and
// removal followed by re-creation are seen.
func (r *HistoryFileRepository) Watch(ctx context.Context, onChange func()) error {
	return r.watch(ctx, DefaultDebounce, onChange)
}

func (r *HistoryFileRepository) watch(ctx context.Context, debounce time.Duration, onChange func()) error {
	if err := os.MkdirAll(r.dir, 0o700); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(r.dir); err != nil {
		return fmt.Errorf("watch %s: %w", r.dir, err)
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != HistoryFileName {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Stop()
				timer.Reset(debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch %s: %w", r.dir, err)
		}
	}
}
