package build

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/odingame/forge/internal/ctxlog"
)

// DefaultDebounce is how long Watch waits for changes to settle.
const DefaultDebounce = 200 * time.Millisecond

// WatchExtensions are the source files whose changes trigger a rebuild.
var WatchExtensions = []string{".odin"}

// Watch rebuilds the game library each time a source file under the game
// package changes, until ctx is cancelled. Builds run one at a time on the
// calling goroutine; a failed build is reported and watching continues.
// ready, if non-nil, is closed once the watcher is installed.
func (c *Configurator) Watch(ctx context.Context, opts Options, debounce time.Duration, ready chan<- struct{}) error {
	log := ctxlog.FromContext(ctx)
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	opts.HotReload = true
	opts.Run = false

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	dir := c.Project.Path(c.Project.Settings.GamePackage)
	if err := watchTree(watcher, dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	fmt.Fprintf(c.Out, "Watching %s for changes (Ctrl-C to stop)\n", dir)
	if ready != nil {
		close(ready)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	var changed string

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := watchTree(watcher, event.Name); err != nil {
						log.Warn("watching new directory", "dir", event.Name, "error", err)
					}
					continue
				}
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if !watched(event.Name) {
				continue
			}
			changed = event.Name
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", "error", err)

		case <-timer.C:
			fmt.Fprintf(c.Out, "Change detected: %s\n", filepath.Base(changed))
			if _, err := c.Build(ctx, opts); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				fmt.Fprintf(c.Out, "Rebuild failed: %v\n", err)
				continue
			}
			fmt.Fprintln(c.Out, "Reloaded game library")
		}
	}
}

// watchTree adds dir and every non-hidden directory below it.
func watchTree(w *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		return w.Add(path)
	})
}

func watched(name string) bool {
	ext := filepath.Ext(name)
	for _, e := range WatchExtensions {
		if ext == e {
			return true
		}
	}
	return false
}
