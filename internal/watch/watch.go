// Package watch rebuilds the page whenever a source document or template changes.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/pagebuilder/internal/config"
	"git.home.luguber.info/inful/pagebuilder/internal/logfields"
)

// DefaultDebounce collapses bursts of editor writes into one rebuild.
const DefaultDebounce = 300 * time.Millisecond

// BuildFunc runs one complete build.
type BuildFunc func(ctx context.Context) error

// Watcher triggers full rebuilds on changes to the files of a layout. Builds
// never overlap; changes arriving during a build queue exactly one more.
type Watcher struct {
	dirs     []string
	files    map[string]struct{}
	build    BuildFunc
	debounce time.Duration
	logger   *slog.Logger
}

// New creates a watcher for the documents and templates of layout.
func New(layout config.Layout, build BuildFunc) *Watcher {
	w := &Watcher{
		files:    make(map[string]struct{}),
		build:    build,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
	}
	seen := make(map[string]struct{})
	track := func(p string) {
		p = filepath.Clean(p)
		w.files[p] = struct{}{}
		dir := filepath.Dir(p)
		if _, ok := seen[dir]; !ok {
			seen[dir] = struct{}{}
			w.dirs = append(w.dirs, dir)
		}
	}
	for _, doc := range layout.Documents {
		track(layout.DocumentPath(doc))
	}
	track(layout.Header)
	track(layout.Footer)
	return w
}

// WithDebounce overrides the debounce interval.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

// WithLogger overrides the logger.
func (w *Watcher) WithLogger(l *slog.Logger) *Watcher {
	if l != nil {
		w.logger = l
	}
	return w
}

// Dirs returns the directories being watched.
func (w *Watcher) Dirs() []string { return append([]string(nil), w.dirs...) }

// Relevant reports whether a change to path should trigger a rebuild.
func (w *Watcher) Relevant(path string) bool {
	_, ok := w.files[filepath.Clean(path)]
	return ok
}

// Run performs an initial build, then rebuilds on every relevant change until
// ctx is done. Build failures are logged and watching continues.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("fsnotify: %w", err)
	}
	defer func() { _ = fsw.Close() }()

	for _, dir := range w.dirs {
		if err := fsw.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.logger.Debug("Watching directory", logfields.Path(dir))
	}

	rebuildReq := make(chan struct{}, 1)
	rebuildReq <- struct{}{} // initial build

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		w.worker(ctx, rebuildReq)
	}()

	trigger, stop := w.debouncer(rebuildReq)
	defer stop()

	for {
		select {
		case <-ctx.Done():
			stop()
			wg.Wait()
			return nil
		case ev, ok := <-fsw.Events:
			if !ok {
				wg.Wait()
				return nil
			}
			if !w.Relevant(ev.Name) || ev.Op == fsnotify.Chmod {
				continue
			}
			w.logger.Debug("Change detected", logfields.File(ev.Name), "op", ev.Op.String())
			trigger()
		case err, ok := <-fsw.Errors:
			if !ok {
				wg.Wait()
				return nil
			}
			w.logger.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// worker runs queued builds one at a time.
func (w *Watcher) worker(ctx context.Context, rebuildReq <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-rebuildReq:
			if err := w.build(ctx); err != nil {
				if ctx.Err() != nil {
					return
				}
				w.logger.Error("Rebuild failed", logfields.Error(err))
			}
		}
	}
}

// debouncer returns a trigger that queues a rebuild once no further triggers
// arrive for the debounce interval.
func (w *Watcher) debouncer(rebuildReq chan<- struct{}) (trigger func(), stop func()) {
	var mu sync.Mutex
	var timer *time.Timer

	trigger = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(w.debounce, func() {
			select {
			case rebuildReq <- struct{}{}:
			default: // a rebuild is already pending
			}
		})
	}
	stop = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
	}
	return trigger, stop
}
