package content

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce collapses editor save bursts into one reload.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a content file into a Store whenever it changes on disk.
type Watcher struct {
	path     string
	store    *Store
	logger   *zap.Logger
	debounce time.Duration
	watcher  *fsnotify.Watcher
	reloaded func(*Content, error)
	done     chan struct{}
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithReloadHook is called after every reload attempt.
func WithReloadHook(fn func(*Content, error)) WatchOption {
	return func(w *Watcher) {
		w.reloaded = fn
	}
}

// Watch starts watching path. The parent directory is watched so editors
// that replace the file on save are still observed. The watcher stops when
// ctx ends; Wait blocks until it has.
func Watch(ctx context.Context, path string, store *Store, logger *zap.Logger, opts ...WatchOption) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("content: resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("content: create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("content: watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:     abs,
		store:    store,
		logger:   logger.With(zap.String("path", abs)),
		debounce: DefaultDebounce,
		watcher:  fsw,
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}

	go w.run(ctx)
	return w, nil
}

// Wait blocks until the watcher has stopped.
func (w *Watcher) Wait() {
	<-w.done
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)
	defer w.watcher.Close()

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("content watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	doc, err := LoadFile(w.path)
	if err != nil {
		w.logger.Error("content reload failed, keeping previous document", zap.Error(err))
	} else {
		w.store.Swap(doc)
		w.logger.Info("content reloaded", zap.Int("testimonials", len(doc.Testimonials.Items)))
	}
	if w.reloaded != nil {
		w.reloaded(doc, err)
	}
}
