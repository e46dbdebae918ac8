package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hance08/bankbook/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// migrationsFS points at the repository's migrations directory.
var migrationsFS = os.DirFS(filepath.Join("..", ".."))

func openBackends(t *testing.T) map[string]Store {
	t.Helper()
	dir := t.TempDir()

	sqliteStore, err := NewSQLiteStore(filepath.Join(dir, "accounts.db"), migrationsFS)
	require.NoError(t, err)
	boltStore, err := NewBoltStore(filepath.Join(dir, "accounts.bolt"))
	require.NoError(t, err)
	fileStore, err := Open(Config{Backend: BackendFile, Path: filepath.Join(dir, "accounts.json")}, nil)
	require.NoError(t, err)

	backends := map[string]Store{
		BackendFile:   fileStore,
		BackendSQLite: sqliteStore,
		BackendBolt:   boltStore,
		BackendMemory: NewMemoryStore(),
	}
	t.Cleanup(func() {
		for _, s := range backends {
			_ = s.Close()
		}
	})
	return backends
}

func TestBackends_EmptyLoad(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			snap, err := s.Load()
			require.NoError(t, err)
			assert.Empty(t, snap)
		})
	}
}

func TestBackends_SaveReplacesSnapshot(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Save(sampleSnapshot()))

			got, err := s.Load()
			require.NoError(t, err)
			assert.Equal(t, sampleSnapshot(), got)

			next := Snapshot{
				{ID: "50000003", Record: model.Record{Name: "Carol", Type: "savings", Balance: 1}},
			}
			require.NoError(t, s.Save(next))

			got, err = s.Load()
			require.NoError(t, err)
			assert.Equal(t, next, got)
		})
	}
}

func TestBackends_RejectDuplicateIDs(t *testing.T) {
	dup := Snapshot{{ID: "1", Record: model.Record{Type: "savings"}}, {ID: "1", Record: model.Record{Type: "savings"}}}

	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Save(sampleSnapshot()))
			assert.ErrorIs(t, s.Save(dup), ErrDuplicateID)

			got, err := s.Load()
			require.NoError(t, err)
			assert.Equal(t, sampleSnapshot(), got)
		})
	}
}

func TestSQLiteStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.db")

	s, err := NewSQLiteStore(path, migrationsFS)
	require.NoError(t, err)
	require.NoError(t, s.Save(sampleSnapshot()))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path, migrationsFS)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)
}

func TestBoltStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accounts.bolt")

	s, err := NewBoltStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Save(sampleSnapshot()))
	require.NoError(t, s.Close())

	s, err = NewBoltStore(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, sampleSnapshot(), got)
}

func TestMemoryStore_CountsSaves(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save(sampleSnapshot()))
	require.NoError(t, s.Save(sampleSnapshot()))
	assert.Equal(t, 2, s.Saves())

	snap, err := s.Load()
	require.NoError(t, err)
	snap[0].Record.Name = "changed"

	again, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, "Zed", again[0].Record.Name)
}

func TestOpen(t *testing.T) {
	s, err := Open(Config{Backend: BackendMemory}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, s)

	s, err = Open(Config{}, nil)
	require.NoError(t, err)
	fs, ok := s.(*FileStore)
	require.True(t, ok)
	assert.Equal(t, "accounts.json", fs.Path())

	_, err = Open(Config{Backend: BackendSQLite}, nil)
	assert.Error(t, err)

	_, err = Open(Config{Backend: "postgres"}, nil)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
