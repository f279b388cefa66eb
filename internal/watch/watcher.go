// Package watch reloads the configuration store when a declaration file
// changes on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"

	"git.home.luguber.info/inful/sitecfg/internal/config"
	"git.home.luguber.info/inful/sitecfg/internal/logfields"
)

// DefaultDebounce collapses the burst of events an editor save produces.
const DefaultDebounce = 300 * time.Millisecond

// Reloader is the part of config.Store the watcher drives.
type Reloader interface {
	Reload() (config.ReloadOutcome, error)
	Paths() []string
}

// Event describes one reload attempt.
type Event struct {
	ID      string
	Outcome config.ReloadOutcome
	Err     error
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the quiet period before a reload runs.
func WithDebounce(d time.Duration) Option { return func(w *Watcher) { w.debounce = d } }

// WithExtraFiles watches additional files, such as .env files, that feed
// the configuration.
func WithExtraFiles(paths ...string) Option {
	return func(w *Watcher) { w.extra = append(w.extra, paths...) }
}

// OnReload registers a callback invoked after every reload attempt.
func OnReload(fn func(Event)) Option { return func(w *Watcher) { w.onReload = fn } }

// Watcher monitors declaration files and triggers debounced reloads.
type Watcher struct {
	reloader Reloader
	debounce time.Duration
	extra    []string
	onReload func(Event)

	watcher  *fsnotify.Watcher
	files    map[string]bool // absolute paths
	mu       sync.Mutex
	started  bool
	stopChan chan struct{}
	trigger  chan struct{}
	wg       sync.WaitGroup
}

// New creates a watcher for every file r loads.
func New(r Reloader, opts ...Option) (*Watcher, error) {
	w := &Watcher{
		reloader: r,
		debounce: DefaultDebounce,
		files:    map[string]bool{},
		stopChan: make(chan struct{}),
		trigger:  make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(w)
	}

	for _, p := range append(r.Paths(), w.extra...) {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve watched path %s: %w", p, err)
		}
		w.files[abs] = true
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w.watcher = fw
	return w, nil
}

// Start watches the directories holding the files; watching a directory
// survives editors that save by rename.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.started {
		return fmt.Errorf("watcher already started")
	}

	dirs := map[string]bool{}
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}
	w.started = true

	slog.Info("Starting configuration watcher", logfields.ConfigPaths(w.reloader.Paths()))

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

// Stop ends watching and waits for the loops to exit. A reload already
// running completes first.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.stopChan:
		return nil
	default:
	}
	close(w.stopChan)
	err := w.watcher.Close()
	w.wg.Wait()
	slog.Info("Stopped configuration watcher")
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.files[filepath.Clean(event.Name)] {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				slog.Debug("Config file change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
				w.triggerReload()
			case event.Has(fsnotify.Remove):
				slog.Warn("Config file removed", logfields.File(event.Name))
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Config watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	defer w.wg.Done()
	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.trigger:
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			w.performReload()
		}
	}
}

func (w *Watcher) triggerReload() {
	select {
	case w.trigger <- struct{}{}:
	default:
		// already pending
	}
}

// performReload runs one reload attempt. A failed attempt keeps the
// previous configuration.
func (w *Watcher) performReload() {
	id := uuid.NewString()
	start := time.Now()
	slog.Info("Reloading configuration", logfields.ReloadID(id))

	out, err := w.reloader.Reload()
	elapsed := logfields.DurationMS(float64(time.Since(start).Microseconds()) / 1000)
	switch {
	case err != nil:
		slog.Error("Configuration reload failed; keeping previous configuration",
			logfields.ReloadID(id), elapsed, logfields.Error(err))
	case !out.Changed:
		slog.Info("Configuration unchanged", logfields.ReloadID(id), elapsed, logfields.Fingerprint(out.Fingerprint))
	default:
		slog.Info("Configuration reloaded", logfields.ReloadID(id), elapsed, logfields.Fingerprint(out.Fingerprint))
	}
	if out.Result != nil {
		for _, warning := range out.Result.Warnings {
			slog.Warn(warning, logfields.ReloadID(id))
		}
	}

	if w.onReload != nil {
		w.onReload(Event{ID: id, Outcome: out, Err: err})
	}
}
