package config

import (
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
)

// snapshot is one immutable generation of the configuration.
type snapshot struct {
	cfg         *SiteConfig
	fingerprint string
	loadedAt    time.Time
}

// Store holds the current SiteConfig for a build or dev session. Readers
// get copies of an immutable snapshot; Reload builds a complete new
// snapshot and swaps it in atomically, so a reader never observes a partial
// update. A failed reload leaves the previous snapshot in place.
type Store struct {
	paths    []string
	loader   *Loader
	recorder metrics.Recorder
	now      func() time.Time

	loadMu  sync.Mutex // serializes loads; readers never block
	current atomic.Pointer[snapshot]
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLoader replaces the default Loader.
func WithLoader(l *Loader) StoreOption { return func(s *Store) { s.loader = l } }

// WithRecorder attaches a metrics recorder.
func WithRecorder(r metrics.Recorder) StoreOption { return func(s *Store) { s.recorder = r } }

// ReloadOutcome describes a completed Init or Reload.
type ReloadOutcome struct {
	Changed     bool
	Fingerprint string
	Result      *Result
}

// NewStore creates an empty Store for the declaration files at paths.
func NewStore(paths []string, opts ...StoreOption) *Store {
	s := &Store{
		paths:    slices.Clone(paths),
		loader:   NewLoader(),
		recorder: metrics.NoopRecorder{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ErrNotInitialized is returned by operations that need a loaded snapshot.
var ErrNotInitialized = ferrors.InternalError("configuration store not initialized").Build()

// ErrAlreadyInitialized is returned by a second Init.
var ErrAlreadyInitialized = ferrors.InternalError("configuration store already initialized").Build()

// Init performs the first load. An invalid configuration leaves the store
// empty and returns the load error.
func (s *Store) Init() (ReloadOutcome, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if s.current.Load() != nil {
		return ReloadOutcome{}, ErrAlreadyInitialized
	}
	return s.loadLocked()
}

// Reload re-reads every declaration file and swaps in the new snapshot when
// it is valid. Changed is false when the new configuration has the same
// fingerprint as the current one; the current snapshot is then kept.
func (s *Store) Reload() (ReloadOutcome, error) {
	s.loadMu.Lock()
	defer s.loadMu.Unlock()
	if s.current.Load() == nil {
		return ReloadOutcome{}, ErrNotInitialized
	}
	return s.loadLocked()
}

func (s *Store) loadLocked() (ReloadOutcome, error) {
	start := s.now()
	cfg, res, err := s.loader.Load(s.paths...)
	s.recorder.ObserveLoadDuration(s.now().Sub(start))
	if err != nil {
		s.recordFailure(err)
		return ReloadOutcome{Result: res}, err
	}

	fp := cfg.Fingerprint()
	if prev := s.current.Load(); prev != nil && prev.fingerprint == fp {
		s.recorder.IncLoadOutcome(metrics.OutcomeUnchanged)
		return ReloadOutcome{Fingerprint: fp, Result: res}, nil
	}

	loadedAt := s.now()
	s.current.Store(&snapshot{cfg: cfg, fingerprint: fp, loadedAt: loadedAt})
	s.recorder.IncLoadOutcome(metrics.OutcomeSuccess)
	s.recorder.SetLastSuccess(loadedAt)
	return ReloadOutcome{Changed: true, Fingerprint: fp, Result: res}, nil
}

func (s *Store) recordFailure(err error) {
	var verr ValidationErrors
	if !errors.As(err, &verr) {
		s.recorder.IncLoadOutcome(metrics.OutcomeFailed)
		return
	}
	s.recorder.IncLoadOutcome(metrics.OutcomeInvalid)
	for _, e := range verr {
		s.recorder.IncValidationError(string(e.Rule))
	}
}

// Current returns a copy of the current configuration, or nil before Init.
func (s *Store) Current() *SiteConfig {
	snap := s.current.Load()
	if snap == nil {
		return nil
	}
	return snap.cfg.Clone()
}

// Fingerprint returns the current snapshot's fingerprint, or "".
func (s *Store) Fingerprint() string {
	if snap := s.current.Load(); snap != nil {
		return snap.fingerprint
	}
	return ""
}

// LoadedAt returns when the current snapshot was swapped in.
func (s *Store) LoadedAt() time.Time {
	if snap := s.current.Load(); snap != nil {
		return snap.loadedAt
	}
	return time.Time{}
}

// Paths returns the declaration files the store loads, in merge order.
func (s *Store) Paths() []string { return slices.Clone(s.paths) }

var defaultStore atomic.Pointer[Store]

// Init loads the process-wide configuration from paths. It fails if the
// process-wide store is already initialized.
func Init(paths []string, opts ...StoreOption) (ReloadOutcome, error) {
	s := NewStore(paths, opts...)
	out, err := s.Init()
	if err != nil {
		return out, err
	}
	if !defaultStore.CompareAndSwap(nil, s) {
		return ReloadOutcome{}, ErrAlreadyInitialized
	}
	return out, nil
}

// Reload reloads the process-wide configuration.
func Reload() (ReloadOutcome, error) {
	s := defaultStore.Load()
	if s == nil {
		return ReloadOutcome{}, ErrNotInitialized
	}
	return s.Reload()
}

// Current returns a copy of the process-wide configuration, or nil before Init.
func Current() *SiteConfig {
	s := defaultStore.Load()
	if s == nil {
		return nil
	}
	return s.Current()
}

// Default returns the process-wide store, or nil before Init.
func Default() *Store { return defaultStore.Load() }
