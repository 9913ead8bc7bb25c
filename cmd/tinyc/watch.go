package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce is how long a file must stay quiet before it is re-parsed.
const watchDebounce = 100 * time.Millisecond

// fileWatcher reports changes to a single file.
type fileWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	log      *slog.Logger
	debounce time.Duration
}

// newFileWatcher starts watching path. The parent directory is watched
// because editors often save by replacing the file.
func newFileWatcher(path string, log *slog.Logger) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch directory: %w", err)
	}

	return &fileWatcher{
		path:     abs,
		watcher:  watcher,
		log:      log,
		debounce: watchDebounce,
	}, nil
}

// run calls onChange after each burst of writes to the file, until ctx is
// done. It closes the watcher on return.
func (fw *fileWatcher) run(ctx context.Context, onChange func()) error {
	defer fw.watcher.Close()

	var fire <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			fw.log.Debug("stopping file watcher")
			return nil

		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fw.log.Debug("file changed", "file", event.Name, "op", event.Op.String())
			fire = time.After(fw.debounce)

		case <-fire:
			fire = nil
			onChange()

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.log.Error("watcher error", "error", err)
		}
	}
}

// watch parses name once and again after every change until ctx is done.
func (a *app) watch(ctx context.Context, name string, opts parseOptions) error {
	fw, err := newFileWatcher(name, a.log)
	if err != nil {
		return err
	}

	parse := func() {
		err := a.parseFile(name, opts)
		switch {
		case err == nil:
			fmt.Fprintf(a.stderr, "--- %s: ok\n", name)
		case errors.Is(err, errSyntax):
			fmt.Fprintf(a.stderr, "--- %s: syntax errors\n", name)
		default:
			fmt.Fprintf(a.stderr, "--- %s: %v\n", name, err)
		}
	}

	parse()
	a.log.Info("watching for changes", "file", name)
	return fw.run(ctx, parse)
}
