// Package watcher implements file watching for project and lock manifests.
package watcher

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/attune/internal/core/domain"
	"go.trai.ch/attune/internal/core/ports"
)

var _ ports.FileWatcher = (*Watcher)(nil)

// Watcher implements ports.FileWatcher on top of fsnotify.
//
// Individual files cannot be watched reliably across editors that replace
// files on save, so the parent directory of each registered path is watched
// instead and events are filtered down to the registered set.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	contents  *ContentCache

	mu          sync.Mutex
	callbacks   map[domain.InternedString]func(path string)
	watchedDirs map[string]struct{}
	closed      bool
}

// NewWatcher creates a watcher with the given debounce window.
func NewWatcher(window time.Duration) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fsWatcher:   fsWatcher,
		contents:    NewContentCache(),
		callbacks:   make(map[domain.InternedString]func(path string)),
		watchedDirs: make(map[string]struct{}),
	}
	w.debouncer = NewDebouncer(window, w.dispatch)
	go w.processEvents()
	return w, nil
}

// Watch registers a callback for changes to the given file path.
// Registering the same path again replaces the previous callback; the
// underlying directory watch is installed once.
func (w *Watcher) Watch(path string, onChange func(path string)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fsnotify.ErrClosed
	}

	w.callbacks[domain.NewInternedString(abs)] = onChange

	dir := filepath.Dir(abs)
	if _, ok := w.watchedDirs[dir]; ok {
		return nil
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}
	w.watchedDirs[dir] = struct{}{}

	// Seed the content cache so the first real change is not suppressed.
	w.contents.Refresh(abs)
	return nil
}

// Close stops the watcher and releases all resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	return w.fsWatcher.Close()
}

// processEvents filters raw fsnotify events down to registered paths and
// feeds them through the debouncer.
func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			w.debouncer.Add(event.Name)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintf(os.Stderr, "watcher: file system error: %v\n", err)
		}
	}
}

// relevant reports whether an event targets a registered path with a
// content-affecting operation.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	w.mu.Lock()
	_, registered := w.callbacks[domain.NewInternedString(event.Name)]
	w.mu.Unlock()

	return registered
}

// dispatch runs after the debounce window closes. Paths whose content did
// not actually change since the last dispatch are dropped, so touch-only
// saves do not trigger callbacks.
func (w *Watcher) dispatch(paths []string) {
	for _, path := range paths {
		if !w.contents.Refresh(path) {
			continue
		}

		w.mu.Lock()
		onChange := w.callbacks[domain.NewInternedString(path)]
		w.mu.Unlock()

		if onChange != nil {
			onChange(path)
		}
	}
}
