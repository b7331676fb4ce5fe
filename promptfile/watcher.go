package promptfile

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher re-parses a .prompt file whenever it changes on disk.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	files   chan *File
	errs    chan error
}

// Watch starts watching the .prompt file at path. Every time the file is
// written (or atomically replaced, as editors do), it is re-parsed and the
// result delivered on Files; parse and read failures go to Errors and
// watching continues. The watcher stops when ctx is cancelled or Close is
// called.
func Watch(ctx context.Context, path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve prompt path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	// Watching the directory is more reliable than watching the file:
	// editors often replace the file, which would drop a direct watch.
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch prompt directory: %w", err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		files:   make(chan *File, 1),
		errs:    make(chan error, 1),
	}
	go w.run(ctx)
	return w, nil
}

// Files delivers each successful re-parse. The channel closes when the
// watcher stops.
func (w *Watcher) Files() <-chan *File {
	return w.files
}

// Errors delivers read and parse failures. The channel closes when the
// watcher stops.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.files)
	defer close(w.errs)

	for {
		select {
		case <-ctx.Done():
			w.watcher.Close()
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			file, err := Load(w.path)
			if err != nil {
				select {
				case w.errs <- err:
				case <-ctx.Done():
					w.watcher.Close()
					return
				}
				continue
			}
			select {
			case w.files <- file:
			case <-ctx.Done():
				w.watcher.Close()
				return
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			case <-ctx.Done():
				w.watcher.Close()
				return
			}
		}
	}
}
