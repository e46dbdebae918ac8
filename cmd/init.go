package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/store"
	"github.com/hance08/bankbook/internal/ui/prompts"
	"github.com/hance08/bankbook/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func NewInitCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:         "init",
		Short:       "Choose the default currency and store",
		Long:        `Walk through the basic settings and save them to the config file.`,
		Annotations: map[string]string{app.SkipLedgerAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			current := prompts.InitSettings{
				Currency:       a.Config.Defaults.Currency,
				Backend:        a.Config.Store.Backend,
				AllowOverdraft: a.Config.Ledger.AllowOverdraft,
			}

			settings, err := prompts.PromptInitSettings(current, store.Backends)
			if err != nil {
				return err
			}

			path, err := saveSettings(viper.GetViper(), settings, a.Config.ConfigPath)
			if err != nil {
				return err
			}

			pterm.Success.Printf("Configuration saved to %s\n", path)
			return nil
		},
	}
}

// saveSettings writes settings into the config file at path, or the default
// location when path is empty.
func saveSettings(v *viper.Viper, settings prompts.InitSettings, path string) (string, error) {
	if err := validation.ValidateCurrency(settings.Currency); err != nil {
		return "", err
	}

	if path == "" {
		appDir, err := app.DataDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(appDir, "config.yaml")
	}

	v.Set("defaults.currency", settings.Currency)
	v.Set("store.backend", settings.Backend)
	v.Set("ledger.allow_overdraft", settings.AllowOverdraft)

	if err := v.WriteConfigAs(path); err != nil {
		return "", fmt.Errorf("failed to save config to file: %w", err)
	}

	return path, nil
}
