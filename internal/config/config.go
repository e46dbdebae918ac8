package config

import (
	"fmt"
	"strings"

	"github.com/hance08/bankbook/internal/constants"
	"github.com/spf13/viper"
)

type Config struct {
	Store      StoreConfig    `mapstructure:"store"`
	Ledger     LedgerConfig   `mapstructure:"ledger"`
	Log        LogConfig      `mapstructure:"log"`
	Server     ServerConfig   `mapstructure:"server"`
	Defaults   DefaultsConfig `mapstructure:"defaults"`
	ConfigPath string         `mapstructure:"-"`
}

type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
}

type LedgerConfig struct {
	AllowOverdraft bool `mapstructure:"allow_overdraft"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type DefaultsConfig struct {
	Currency string `mapstructure:"currency"`
}

func NewDefault() *Config {
	return &Config{
		Store:    StoreConfig{Backend: constants.DefaultStoreBackend, Path: ""},
		Ledger:   LedgerConfig{AllowOverdraft: false},
		Log:      LogConfig{Level: "warn", Format: "console"},
		Server:   ServerConfig{Addr: constants.DefaultServerAddr},
		Defaults: DefaultsConfig{Currency: constants.DefaultCurrency},
	}
}

// SetDefaults registers every key with viper so env overrides resolve and a
// freshly written config file lists all settings.
func SetDefaults(v *viper.Viper) {
	d := NewDefault()
	v.SetDefault("store.backend", d.Store.Backend)
	v.SetDefault("store.path", d.Store.Path)
	v.SetDefault("ledger.allow_overdraft", d.Ledger.AllowOverdraft)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("server.addr", d.Server.Addr)
	v.SetDefault("defaults.currency", d.Defaults.Currency)
}

// BindEnv enables BANKBOOK_* environment overrides, e.g. BANKBOOK_STORE_PATH.
func BindEnv(v *viper.Viper) {
	v.SetEnvPrefix("BANKBOOK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load decodes the viper state into a Config.
func Load(v *viper.Viper) (*Config, error) {
	cfg := NewDefault()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %v", err)
	}

	cfg.Defaults.Currency = strings.ToUpper(strings.TrimSpace(cfg.Defaults.Currency))
	cfg.Store.Backend = strings.ToLower(strings.TrimSpace(cfg.Store.Backend))
	cfg.ConfigPath = v.ConfigFileUsed()

	return cfg, nil
}
