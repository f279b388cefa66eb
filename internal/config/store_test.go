package config

import (
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/sitecfg/internal/foundation/errors"
	"git.home.luguber.info/inful/sitecfg/internal/metrics"
)

type countingRecorder struct {
	mu       sync.Mutex
	outcomes map[metrics.LoadOutcome]int
	rules    map[string]int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{outcomes: map[metrics.LoadOutcome]int{}, rules: map[string]int{}}
}

func (r *countingRecorder) ObserveLoadDuration(time.Duration) {}
func (r *countingRecorder) SetLastSuccess(time.Time)          {}
func (r *countingRecorder) IncLoadOutcome(o metrics.LoadOutcome) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.outcomes[o]++
}
func (r *countingRecorder) IncValidationError(rule string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules[rule]++
}

func newTestStore(t *testing.T, content string, opts ...StoreOption) (*Store, string) {
	t.Helper()
	p := writeFile(t, t.TempDir(), "site.yaml", content)
	opts = append([]StoreOption{WithLoader(testLoader(nil))}, opts...)
	return NewStore([]string{p}, opts...), p
}

func TestStoreLifecycle(t *testing.T) {
	rec := newCountingRecorder()
	s, p := newTestStore(t, "title: v1\n", WithRecorder(rec))

	assert.Nil(t, s.Current())
	_, err := s.Reload()
	assert.ErrorIs(t, err, ErrNotInitialized)

	out, err := s.Init()
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, "v1", s.Current().Title)
	assert.Equal(t, out.Fingerprint, s.Fingerprint())
	assert.False(t, s.LoadedAt().IsZero())

	_, err = s.Init()
	assert.ErrorIs(t, err, ErrAlreadyInitialized)

	// unchanged content keeps the snapshot
	out, err = s.Reload()
	require.NoError(t, err)
	assert.False(t, out.Changed)

	writeFile(t, filepath.Dir(p), "site.yaml", "title: v2\n")
	out, err = s.Reload()
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, "v2", s.Current().Title)

	// an invalid reload keeps v2
	writeFile(t, filepath.Dir(p), "site.yaml", "title: v3\nbase: nope\n")
	_, err = s.Reload()
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryValidation))
	assert.Equal(t, "v2", s.Current().Title)

	assert.Equal(t, 2, rec.outcomes[metrics.OutcomeSuccess])
	assert.Equal(t, 1, rec.outcomes[metrics.OutcomeUnchanged])
	assert.Equal(t, 1, rec.outcomes[metrics.OutcomeInvalid])
	assert.Equal(t, 1, rec.rules[string(RuleBaseSlashes)])
}

func TestStoreInitFailureLeavesStoreEmpty(t *testing.T) {
	s, _ := newTestStore(t, "themeConfig:\n  search: {provider: unknown}\n")
	_, err := s.Init()
	require.Error(t, err)
	assert.Nil(t, s.Current())
	assert.Empty(t, s.Fingerprint())
}

func TestStoreCurrentReturnsCopy(t *testing.T) {
	s, _ := newTestStore(t, "title: original\nthemeConfig:\n  nav: [{text: Home, link: /}]\n")
	_, err := s.Init()
	require.NoError(t, err)

	cfg := s.Current()
	cfg.Title = "mutated"
	cfg.ThemeConfig.Nav[0].Link = "/mutated"

	again := s.Current()
	assert.Equal(t, "original", again.Title)
	assert.Equal(t, "/", again.ThemeConfig.Nav[0].Link)
}

func TestStoreConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	s, p := newTestStore(t, "title: gen-0\ndescription: gen-0\n")
	_, err := s.Init()
	require.NoError(t, err)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				cfg := s.Current()
				if cfg.Title != cfg.Description {
					t.Errorf("torn snapshot: title=%q description=%q", cfg.Title, cfg.Description)
					return
				}
			}
		}()
	}

	for i := 1; i <= 20; i++ {
		gen := "gen-" + string(rune('a'+i))
		writeFile(t, filepath.Dir(p), "site.yaml", "title: "+gen+"\ndescription: "+gen+"\n")
		_, err := s.Reload()
		require.NoError(t, err)
	}
	close(stop)
	wg.Wait()
}

func TestPackageLevelStore(t *testing.T) {
	t.Cleanup(func() { defaultStore.Store(nil) })
	defaultStore.Store(nil)

	assert.Nil(t, Current())
	assert.Nil(t, Default())
	_, err := Reload()
	assert.ErrorIs(t, err, ErrNotInitialized)

	p := writeFile(t, t.TempDir(), "site.yaml", "title: global\n")
	_, err = Init([]string{p}, WithLoader(testLoader(nil)))
	require.NoError(t, err)
	assert.Equal(t, "global", Current().Title)
	assert.Equal(t, []string{p}, Default().Paths())

	_, err = Init([]string{p}, WithLoader(testLoader(nil)))
	assert.ErrorIs(t, err, ErrAlreadyInitialized)

	writeFile(t, filepath.Dir(p), "site.yaml", "title: reloaded\n")
	out, err := Reload()
	require.NoError(t, err)
	assert.True(t, out.Changed)
	assert.Equal(t, "reloaded", Current().Title)
}
