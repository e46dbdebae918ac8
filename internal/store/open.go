package store

import (
	"fmt"
	"io/fs"

	"github.com/hance08/bankbook/internal/codec"
	"github.com/hance08/bankbook/internal/constants"
	"github.com/spf13/afero"
)

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendBolt   = "bolt"
	BackendMemory = "memory"
)

// Backends lists every supported backend name.
var Backends = []string{BackendFile, BackendSQLite, BackendBolt, BackendMemory}

type Config struct {
	Backend string
	Path    string
}

// DefaultPath returns the store location used when none is configured,
// relative to the working directory.
func DefaultPath(backend string) string {
	switch backend {
	case BackendSQLite:
		return "accounts.db"
	case BackendBolt:
		return "accounts.bolt"
	case BackendMemory:
		return ""
	default:
		return constants.DefaultStorePath
	}
}

// Open creates the configured backend. migrationsFS is only read by the
// sqlite backend.
func Open(cfg Config, migrationsFS fs.FS) (Store, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = BackendFile
	}

	path := cfg.Path
	if path == "" {
		path = DefaultPath(backend)
	}

	switch backend {
	case BackendFile:
		return NewFileStore(afero.NewOsFs(), path, codec.NewBase64()), nil
	case BackendSQLite:
		if migrationsFS == nil {
			return nil, fmt.Errorf("sqlite backend requires migrations")
		}
		return NewSQLiteStore(path, migrationsFS)
	case BackendBolt:
		return NewBoltStore(path)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("%w '%s' (must be one of %v)", ErrUnknownBackend, cfg.Backend, Backends)
	}
}
