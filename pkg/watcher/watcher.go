// Package watcher provides debounced single-file watching, used for
// live theme reloads.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the default settle window before the callback
// fires.
const DefaultDebounce = 250 * time.Millisecond

// Watcher watches one file and invokes its callback once writes have
// settled for the debounce window. Rapid event bursts (editors often
// write a file several times per save) collapse into one invocation.
type Watcher struct {
	fw       *fsnotify.Watcher
	path     string
	debounce time.Duration
	onChange func()

	mu    sync.Mutex
	timer *time.Timer
	seq   uint64

	closeOnce sync.Once
	done      chan struct{}
}

// New starts watching path. debounce <= 0 uses DefaultDebounce.
func New(path string, debounce time.Duration, onChange func()) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory, not the file: editors that replace the
	// file on save would silently drop a watch on the file itself.
	dir := filepath.Dir(path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	w := &Watcher{
		fw:       fw,
		path:     filepath.Clean(path),
		debounce: debounce,
		onChange: onChange,
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

func (w *Watcher) loop() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.trigger()
		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors degrade to missed reloads, nothing fatal.
		case <-w.done:
			return
		}
	}
}

func (w *Watcher) trigger() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.seq++
	seq := w.seq

	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		// Only the most recently scheduled callback runs; Stop can
		// miss a timer that already fired.
		run := seq == w.seq
		if run {
			w.timer = nil
		}
		w.mu.Unlock()
		if run {
			w.onChange()
		}
	})
}

// Close stops the watcher and cancels any pending callback.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		w.seq++
		if w.timer != nil {
			w.timer.Stop()
			w.timer = nil
		}
		w.mu.Unlock()
		close(w.done)
		err = w.fw.Close()
	})
	return err
}
