package theme

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/build50/build50/internal/domain/site"
)

type fakeStorage struct {
	mu      sync.Mutex
	values  map[string]string
	getErr  error
	setErr  error
	gets    int
	sets    int
	lastSet string
}

func newFakeStorage(initial map[string]string) *fakeStorage {
	if initial == nil {
		initial = map[string]string{}
	}
	return &fakeStorage{values: initial}
}

func (f *fakeStorage) Get(_ context.Context, key string) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.getErr != nil {
		return "", false, f.getErr
	}
	v, ok := f.values[key]
	return v, ok, nil
}

func (f *fakeStorage) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.values[key] = value
	f.lastSet = value
	return nil
}

func (f *fakeStorage) Close() error { return nil }

func (f *fakeStorage) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.gets + f.sets
}

func TestInitializeResolvesStoredPreference(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stored map[string]string
		want   site.ThemePreference
	}{
		{"absent", nil, site.ThemeDark},
		{"light", map[string]string{"theme": "light"}, site.ThemeLight},
		{"dark", map[string]string{"theme": "dark"}, site.ThemeDark},
		{"corrupt", map[string]string{"theme": "blue"}, site.ThemeDark},
		{"wrong case", map[string]string{"theme": "LIGHT"}, site.ThemeDark},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			storage := newFakeStorage(tt.stored)
			s := New(storage, nil)
			assert.Equal(t, tt.want, s.Initialize(context.Background()))
			assert.Equal(t, tt.want, s.Current())
			assert.Equal(t, tt.want.String(), storage.values["theme"])
			assert.False(t, s.SessionOnly())
		})
	}
}

func TestToggleWritesThroughAndIsItsOwnInverse(t *testing.T) {
	t.Parallel()

	storage := newFakeStorage(map[string]string{"theme": "light"})
	s := New(storage, nil)
	start := s.Initialize(context.Background())

	assert.Equal(t, site.ThemeDark, s.Toggle(context.Background()))
	assert.Equal(t, "dark", storage.lastSet)
	assert.Equal(t, start, s.Toggle(context.Background()))
	assert.Equal(t, "light", storage.lastSet)
}

func TestReadFailureFallsBackToSessionOnly(t *testing.T) {
	t.Parallel()

	storage := newFakeStorage(nil)
	storage.getErr = errors.New("storage disabled")
	s := New(storage, nil)

	assert.Equal(t, site.ThemeDark, s.Initialize(context.Background()))
	assert.True(t, s.SessionOnly())
	callsAfterInit := storage.calls()

	assert.Equal(t, site.ThemeLight, s.Toggle(context.Background()))
	assert.Equal(t, site.ThemeDark, s.Toggle(context.Background()))
	assert.Equal(t, callsAfterInit, storage.calls(), "no storage access after degrading")
}

func TestWriteFailureStopsFurtherWrites(t *testing.T) {
	t.Parallel()

	storage := newFakeStorage(nil)
	s := New(storage, nil)
	s.Initialize(context.Background())

	storage.setErr = errors.New("quota exceeded")
	assert.Equal(t, site.ThemeLight, s.Toggle(context.Background()))
	assert.True(t, s.SessionOnly())
	assert.Equal(t, site.ThemeLight, s.Current())

	sets := storage.sets
	s.Toggle(context.Background())
	assert.Equal(t, sets, storage.sets)
}

func TestNilStorageIsSessionOnly(t *testing.T) {
	t.Parallel()

	s := New(nil, nil)
	assert.True(t, s.SessionOnly())
	assert.Equal(t, site.ThemeDark, s.Initialize(context.Background()))
	assert.Equal(t, site.ThemeLight, s.Toggle(context.Background()))
}

func TestSetNotifiesOnlyOnChange(t *testing.T) {
	t.Parallel()

	storage := newFakeStorage(nil)
	s := New(storage, nil)
	s.Initialize(context.Background())

	var seen []site.ThemePreference
	unsubscribe := s.Subscribe(func(p site.ThemePreference) { seen = append(seen, p) })

	s.Set(context.Background(), site.ThemeDark)
	s.Set(context.Background(), site.ThemePreference("blue"))
	s.Set(context.Background(), site.ThemeLight)
	unsubscribe()
	s.Toggle(context.Background())

	require.Equal(t, []site.ThemePreference{site.ThemeLight}, seen)
	assert.Equal(t, site.ThemeDark, s.Current())
}
