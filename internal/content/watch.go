package content

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long Watch waits after the last change before
// calling back.
const DefaultDebounce = 500 * time.Millisecond

// Watch calls onChange after files under dir are written, created, removed
// or renamed, coalescing bursts of events within debounce. Calls to onChange
// never overlap. It blocks until ctx is done.
func Watch(ctx context.Context, dir string, debounce time.Duration, log *zap.Logger, onChange func()) error {
	if log == nil {
		log = zap.NewNop()
	}
	sugar := log.Sugar()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			sugar.Warnw("error walking path", "path", p, "error", err)
			return nil
		}
		if d.IsDir() {
			if watchErr := watcher.Add(p); watchErr != nil {
				sugar.Warnw("failed to watch directory", "dir", p, "error", watchErr)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error during initial directory walk for watching %s: %w", dir, err)
	}

	var (
		mu         sync.Mutex
		buildTimer *time.Timer
		runMu      sync.Mutex
	)
	run := func() {
		runMu.Lock()
		defer runMu.Unlock()
		onChange()
	}
	defer func() {
		mu.Lock()
		if buildTimer != nil {
			buildTimer.Stop()
		}
		mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)) {
				continue
			}
			sugar.Debugw("change detected", "path", event.Name, "op", event.Op.String())

			if event.Has(fsnotify.Create) && isDir(event.Name) {
				if err := watcher.Add(event.Name); err != nil {
					sugar.Warnw("error adding new directory to watcher", "dir", event.Name, "error", err)
				}
			}

			mu.Lock()
			if buildTimer != nil {
				buildTimer.Stop()
			}
			buildTimer = time.AfterFunc(debounce, run)
			mu.Unlock()
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			sugar.Warnw("watcher error", "error", err)
		}
	}
}

func isDir(p string) bool {
	info, err := os.Stat(p)
	if err != nil {
		return false
	}
	return info.IsDir()
}
