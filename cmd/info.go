package cmd

import (
	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/store"
	"github.com/hance08/bankbook/internal/ui"
	"github.com/hance08/bankbook/internal/ui/views"
	"github.com/hance08/bankbook/internal/utils"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type infoRunner struct {
	app *app.App
	fs  afero.Fs
}

func NewInfoCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Display application information",
		Long:  `Display current configuration, store location, and system details.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &infoRunner{
				app: a,
				fs:  afero.NewOsFs(),
			}

			return runner.Run()
		},
	}
}

func (r *infoRunner) Run() error {
	items, err := r.collect()
	if err != nil {
		return err
	}

	ui.PrintL1Title("bankbook")
	return views.RenderSystemInfo(items)
}

func (r *infoRunner) collect() (views.SystemInfoItem, error) {
	cfg := r.app.Config

	configPath := cfg.ConfigPath
	if configPath == "" {
		configPath = "(None, using defaults)"
	}

	storeCfg, err := app.StoreConfig(cfg)
	if err != nil {
		return views.SystemInfoItem{}, err
	}

	storeExists := storeCfg.Backend == store.BackendMemory
	if !storeExists {
		storeExists, _ = afero.Exists(r.fs, storeCfg.Path)
	}

	storePath := storeCfg.Path
	if storePath == "" {
		storePath = "(in memory)"
	}

	snap := r.app.Ledger.Snapshot()

	return views.SystemInfoItem{
		ConfigPath:      configPath,
		StoreBackend:    storeCfg.Backend,
		StorePath:       storePath,
		StoreExists:     storeExists,
		Accounts:        len(snap),
		TotalBalance:    utils.FormatDecimalWithCurrency(snap.Total(), cfg.Defaults.Currency),
		DefaultCurrency: cfg.Defaults.Currency,
		AllowOverdraft:  cfg.Ledger.AllowOverdraft,
		AppDataDir:      appDataDirOrUnknown(),
	}, nil
}

func appDataDirOrUnknown() string {
	dir, err := app.DataDir()
	if err != nil {
		return "Unknown"
	}
	return dir
}
