package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/bankbook/internal/config"
	"github.com/hance08/bankbook/internal/ledger"
	"github.com/hance08/bankbook/internal/logger"
	"github.com/hance08/bankbook/internal/store"
	"github.com/rs/zerolog"
)

type App struct {
	Ledger *ledger.Ledger
	Store  store.Store
	Config *config.Config
	Log    zerolog.Logger
}

// NewApp initialize logger, store and ledger from cfg, then return App entity
func NewApp(cfg *config.Config, migrationFS fs.FS) (*App, func(), error) {
	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format})

	storeCfg, err := StoreConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(storeCfg, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	l, err := ledger.New(st,
		ledger.WithLogger(log),
		ledger.WithOverdraft(cfg.Ledger.AllowOverdraft),
	)
	if err != nil {
		st.Close()
		return nil, nil, err
	}

	log.Debug().
		Str("backend", storeCfg.Backend).
		Str("path", storeCfg.Path).
		Msg("application initialized")

	cleanup := func() {
		if err := st.Close(); err != nil {
			log.Error().Err(err).Msg("error closing store")
		}
	}

	return &App{
		Ledger: l,
		Store:  st,
		Config: cfg,
		Log:    log,
	}, cleanup, nil
}

// StoreConfig resolves the backend and location the application will open.
func StoreConfig(cfg *config.Config) (store.Config, error) {
	backend := cfg.Store.Backend
	if backend == "" {
		backend = store.BackendFile
	}

	path := cfg.Store.Path
	if path == "" {
		path = store.DefaultPath(backend)
	}

	path, err := ExpandPath(path)
	if err != nil {
		return store.Config{}, fmt.Errorf("invalid store path: %w", err)
	}

	return store.Config{Backend: backend, Path: path}, nil
}

// DataDir is where the config file lives.
func DataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".bankbook"), nil
	}

	return filepath.Join(configDir, "bankbook"), nil
}

func ExpandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return home, nil
		}
		if strings.HasPrefix(path, "~/") || strings.HasPrefix(path, "~\\") {
			return filepath.Join(home, path[2:]), nil
		}
	}
	return path, nil
}

// SkipLedgerAnnotation marks commands that run on configuration alone, such
// as repairing or inspecting a store the ledger refuses to load.
const SkipLedgerAnnotation = "bankbook/skip-ledger"

// SkipsLedger reports whether a command carries SkipLedgerAnnotation.
func SkipsLedger(annotations map[string]string) bool {
	return annotations[SkipLedgerAnnotation] == "true"
}
