package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "file", cfg.Store.Backend)
	assert.Empty(t, cfg.Store.Path)
	assert.False(t, cfg.Ledger.AllowOverdraft)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "USD", cfg.Defaults.Currency)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Empty(t, cfg.ConfigPath)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BANKBOOK_STORE_BACKEND", "SQLite")
	t.Setenv("BANKBOOK_STORE_PATH", "/tmp/ledger.db")
	t.Setenv("BANKBOOK_LEDGER_ALLOW_OVERDRAFT", "true")
	t.Setenv("BANKBOOK_DEFAULTS_CURRENCY", "twd")

	v := viper.New()
	SetDefaults(v)
	BindEnv(v)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Store.Backend)
	assert.Equal(t, "/tmp/ledger.db", cfg.Store.Path)
	assert.True(t, cfg.Ledger.AllowOverdraft)
	assert.Equal(t, "TWD", cfg.Defaults.Currency)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "store:\n  backend: bolt\n  path: books.bolt\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	v := viper.New()
	SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, "bolt", cfg.Store.Backend)
	assert.Equal(t, "books.bolt", cfg.Store.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, path, cfg.ConfigPath)
}
