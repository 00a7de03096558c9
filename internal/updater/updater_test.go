package updater

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/inovacc/dadandiaoming/internal/model"
	"github.com/inovacc/dadandiaoming/internal/process"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRegistry struct {
	latest string
	err    error
	calls  int
}

func (f *fakeRegistry) Latest(context.Context, string) (string, error) {
	f.calls++
	return f.latest, f.err
}

type memCache struct {
	records map[string]*model.VersionRecord
	getErr  error
}

func (m *memCache) GetVersionCheck(pkg string) (*model.VersionRecord, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}

	return m.records[pkg], nil
}

func (m *memCache) SaveVersionCheck(rec *model.VersionRecord) error {
	if m.records == nil {
		m.records = map[string]*model.VersionRecord{}
	}

	m.records[rec.Package] = rec

	return nil
}

func (m *memCache) ClearVersionCheck(pkg string) error {
	delete(m.records, pkg)
	return nil
}

type fakeRunner struct {
	fail  map[string]error
	calls []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, process.CommandLine(name, args...))
	return nil, f.fail[name]
}

var fixedNow = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func newChecker(reg *fakeRegistry, cache VersionCache) *Checker {
	return &Checker{
		Registry: reg,
		Cache:    cache,
		TTL:      time.Hour,
		Package:  "dadandiaoming",
		Current:  "1.0.0",
		Now:      func() time.Time { return fixedNow },
	}
}

func TestChecker_UsesFreshCache(t *testing.T) {
	reg := &fakeRegistry{latest: "9.9.9"}
	cache := &memCache{records: map[string]*model.VersionRecord{
		"dadandiaoming": {Package: "dadandiaoming", Latest: "1.1.0", CheckedAt: fixedNow.Add(-10 * time.Minute)},
	}}

	status, err := newChecker(reg, cache).Check(context.Background(), true)
	require.NoError(t, err)
	assert.True(t, status.FromCache)
	assert.Equal(t, "1.1.0", status.Latest)
	assert.Equal(t, Behind, status.Relation)
	assert.Zero(t, reg.calls)
}

func TestChecker_StaleCacheRefreshes(t *testing.T) {
	reg := &fakeRegistry{latest: "1.0.0"}
	cache := &memCache{records: map[string]*model.VersionRecord{
		"dadandiaoming": {Package: "dadandiaoming", Latest: "0.5.0", CheckedAt: fixedNow.Add(-2 * time.Hour)},
	}}

	status, err := newChecker(reg, cache).Check(context.Background(), true)
	require.NoError(t, err)
	assert.False(t, status.FromCache)
	assert.Equal(t, UpToDate, status.Relation)
	assert.Equal(t, 1, reg.calls)
	assert.Equal(t, "1.0.0", cache.records["dadandiaoming"].Latest)
	assert.Equal(t, fixedNow, cache.records["dadandiaoming"].CheckedAt)
}

func TestChecker_Forget(t *testing.T) {
	reg := &fakeRegistry{latest: "1.1.0"}
	cache := &memCache{records: map[string]*model.VersionRecord{
		"dadandiaoming": {Package: "dadandiaoming", Latest: "1.1.0", CheckedAt: fixedNow.Add(-10 * time.Minute)},
	}}
	c := newChecker(reg, cache)

	require.NoError(t, c.Forget())
	assert.NotContains(t, cache.records, "dadandiaoming")

	c.Cache = nil
	assert.NoError(t, c.Forget(), "forgetting without a cache is a no-op")
}

func TestChecker_CacheErrorIgnored(t *testing.T) {
	reg := &fakeRegistry{latest: "1.0.0"}

	status, err := newChecker(reg, &memCache{getErr: errors.New("locked")}).Check(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, UpToDate, status.Relation)
}

func TestChecker_RegistryError(t *testing.T) {
	reg := &fakeRegistry{err: errors.New("offline")}

	status, err := newChecker(reg, nil).Check(context.Background(), true)
	require.Error(t, err)
	assert.Equal(t, "1.0.0", status.Current)
}

func TestUpdater_Apply(t *testing.T) {
	tests := []struct {
		name        string
		latest      string
		fail        map[string]error
		wantOutcome Outcome
		wantVia     string
		wantCalls   []string
	}{
		{
			name:        "up to date",
			latest:      "1.0.0",
			wantOutcome: OutcomeUpToDate,
		},
		{
			name:        "ahead of registry installs published",
			latest:      "0.9.0",
			wantOutcome: OutcomeUpdated,
			wantVia:     "npm",
			wantCalls:   []string{"npm install -g dadandiaoming@latest"},
		},
		{
			name:        "npm succeeds",
			latest:      "1.1.0",
			wantOutcome: OutcomeUpdated,
			wantVia:     "npm",
			wantCalls:   []string{"npm install -g dadandiaoming@latest"},
		},
		{
			name:        "npm fails pnpm succeeds",
			latest:      "1.1.0",
			fail:        map[string]error{"npm": errors.New("EACCES")},
			wantOutcome: OutcomeUpdated,
			wantVia:     "pnpm",
			wantCalls:   []string{"npm install -g dadandiaoming@latest", "pnpm add -g dadandiaoming@latest"},
		},
		{
			name:        "both fail",
			latest:      "1.1.0",
			fail:        map[string]error{"npm": errors.New("EACCES"), "pnpm": errors.New("not found")},
			wantOutcome: OutcomeManual,
			wantCalls:   []string{"npm install -g dadandiaoming@latest", "pnpm add -g dadandiaoming@latest"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &fakeRunner{fail: tt.fail}
			u := New(runner, "dadandiaoming")

			status, err := newChecker(&fakeRegistry{latest: tt.latest}, nil).Check(context.Background(), false)
			require.NoError(t, err)

			res := u.Apply(context.Background(), status)

			assert.Equal(t, tt.wantOutcome, res.Outcome)
			assert.Equal(t, tt.wantVia, res.Via.Name)
			assert.Equal(t, tt.wantCalls, runner.calls)

			if tt.wantOutcome == OutcomeManual {
				var mechErr *MechanismError
				require.ErrorAs(t, res.Err, &mechErr)
				assert.Len(t, mechErr.Attempts, 2)
				assert.Contains(t, mechErr.Error(), "npm: EACCES")
			}
		})
	}
}

func TestUpdater_ManualCommands(t *testing.T) {
	u := New(&fakeRunner{}, "dadandiaoming")
	assert.Equal(t, []string{
		"npm install -g dadandiaoming@latest",
		"pnpm add -g dadandiaoming@latest",
	}, u.ManualCommands())
}
