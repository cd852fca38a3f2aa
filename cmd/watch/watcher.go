package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/LegacyCodeHQ/esgraph/depgraph/parser"
	"github.com/LegacyCodeHQ/esgraph/fsys"
)

const debounceInterval = 300 * time.Millisecond

// watchAndRebuild builds once, then rebuilds after every burst of relevant
// changes in a watched directory until ctx is done. Builds run on this
// goroutine, one at a time.
func watchAndRebuild(ctx context.Context, r *rebuilder) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	watched := make(map[string]bool)
	resync := func(dirs []string) {
		if err := syncWatchDirs(watched, dirs, watcher.Add, watcher.Remove); err != nil {
			fmt.Fprintf(r.errOut, "watcher error: %v\n", err)
		}
	}

	resync(r.rebuild(ctx))

	var debounceTimer *time.Timer
	var debounce <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isRelevantChange(event) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.NewTimer(debounceInterval)
			debounce = debounceTimer.C

		case <-debounce:
			debounceTimer, debounce = nil, nil
			resync(r.rebuild(ctx))

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(r.errOut, "watcher error: %v\n", err)
		}
	}
}

// isRelevantChange reports whether event can change the graph: a module
// file or a package manifest was written, created, removed or renamed.
func isRelevantChange(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if filepath.Base(event.Name) == "package.json" {
		return true
	}
	_, ok := parser.DialectFor(event.Name)
	return ok
}

// syncWatchDirs makes the watched set equal to want. Directories that
// disappeared before they could be added are ignored.
func syncWatchDirs(watched map[string]bool, want []string, add, remove func(string) error) error {
	keep := make(map[string]bool, len(want))
	var errs []error

	for _, dir := range want {
		keep[dir] = true
		if watched[dir] {
			continue
		}
		if err := add(dir); err != nil {
			if !fsys.IsNotExist(err) {
				errs = append(errs, fmt.Errorf("failed to watch %s: %w", dir, err))
			}
			continue
		}
		watched[dir] = true
	}

	for dir := range watched {
		if keep[dir] {
			continue
		}
		delete(watched, dir)
		if err := remove(dir); err != nil && !errors.Is(err, fsnotify.ErrNonExistentWatch) {
			errs = append(errs, fmt.Errorf("failed to stop watching %s: %w", dir, err))
		}
	}

	return errors.Join(errs...)
}
