package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/build50/build50/internal/config"
	"github.com/build50/build50/internal/ports"
	siteerrors "github.com/build50/build50/pkg/errors"
)

func openAll(t *testing.T) map[string]Backend {
	t.Helper()
	dir := t.TempDir()

	file, err := NewFileStore(filepath.Join(dir, "state.json"))
	require.NoError(t, err)
	db, err := OpenSQLite(filepath.Join(dir, "state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return map[string]Backend{
		"memory": NewMemoryStore(),
		"file":   file,
		"sqlite": db,
	}
}

func TestBackendsStoreValues(t *testing.T) {
	t.Parallel()

	for name, backend := range openAll(t) {
		backend := backend
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			_, ok, err := backend.Get(ctx, "theme")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, backend.Set(ctx, "theme", "light"))
			require.NoError(t, backend.Set(ctx, "theme", "dark"))

			v, ok, err := backend.Get(ctx, "theme")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "dark", v)
		})
	}
}

func TestBackendsRecordEnquiriesInOrder(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC)
	first := ports.Enquiry{ID: "a", Name: "Sarah", Email: "sarah@x.com", Package: "Growth", Message: "hi", SubmittedAt: base}
	second := ports.Enquiry{ID: "b", Name: "Tom", Email: "tom@x.com", Package: "Pro", SubmittedAt: base.Add(1500 * time.Millisecond)}

	for name, backend := range openAll(t) {
		backend := backend
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NoError(t, backend.Save(ctx, first))
			require.NoError(t, backend.Save(ctx, second))

			got, err := backend.List(ctx)
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "a", got[0].ID)
			assert.Equal(t, "Tom", got[1].Name)
			assert.True(t, got[1].SubmittedAt.Equal(second.SubmittedAt))
		})
	}
}

func TestBackendsHonourCancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, backend := range openAll(t) {
		backend := backend
		t.Run(name, func(t *testing.T) {
			assert.Error(t, backend.Set(ctx, "theme", "light"))
			_, _, err := backend.Get(ctx, "theme")
			assert.Error(t, err)
		})
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "state.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "theme", "light"))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temporary file is renamed away")

	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok, err := reopened.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestFileStoreRejectsCorruptDocument(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path)
	var storageErr *siteerrors.StorageError
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "open", storageErr.Op)
}

func TestFileStoreWriteFailureKeepsPreviousValue(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "state.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(context.Background(), "theme", "dark"))

	// A directory where the temp file should go makes the write fail.
	require.NoError(t, os.Mkdir(path+".tmp", 0o755))

	err = s.Set(context.Background(), "theme", "light")
	var storageErr *siteerrors.StorageError
	require.ErrorAs(t, err, &storageErr)

	v, _, err := s.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", v)
}

func TestSQLiteMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "build50.db")
	first, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(context.Background(), "theme", "light"))
	require.NoError(t, first.Close())

	second, err := OpenSQLite(path)
	require.NoError(t, err)
	defer second.Close()

	v, ok, err := second.Get(context.Background(), "theme")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "light", v)
}

func TestOpenSelectsDriver(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	b, err := Open(config.StorageSettings{Driver: config.DriverMemory})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, b)

	b, err = Open(config.StorageSettings{Driver: config.DriverFile, Path: filepath.Join(dir, "s.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, b)

	b, err = Open(config.StorageSettings{Driver: config.DriverSQLite, Path: filepath.Join(dir, "s.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, b)
	require.NoError(t, b.Close())

	_, err = Open(config.StorageSettings{Driver: "redis"})
	require.Error(t, err)

	_, err = Open(config.StorageSettings{Driver: config.DriverFile})
	require.Error(t, err)
}
