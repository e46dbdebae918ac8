package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hance08/bankbook/cmd/account"
	storecmd "github.com/hance08/bankbook/cmd/store"
	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/config"
	"github.com/hance08/bankbook/internal/errhandler"
	"github.com/hance08/bankbook/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	storePath string
)

func Execute(migrations fs.FS) {
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " ERROR ",
		Style: pterm.NewStyle(pterm.BgLightRed, pterm.FgBlack),
	}

	rootCmd, cleanup := NewRootCmd(migrations)
	err := rootCmd.Execute()
	cleanup()

	if code := errhandler.HandleError(err); code != 0 {
		os.Exit(code)
	}
}

// NewRootCmd builds the command tree. The application is assembled once the
// flags are parsed; the returned func releases it.
func NewRootCmd(migrations fs.FS) (*cobra.Command, func()) {
	application := &app.App{}
	cleanup := func() {}

	rootCmd := &cobra.Command{
		Use:   "bankbook",
		Short: "bankbook is a CLI based personal banking ledger",
		Long: `bankbook keeps checking and savings accounts in a local store.
Every deposit, withdrawal and transfer is written back immediately.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := initConfig()
			if err != nil {
				return err
			}
			application.Config = cfg

			if app.SkipsLedger(cmd.Annotations) {
				return nil
			}

			built, done, err := app.NewApp(cfg, migrations)
			if err != nil {
				return err
			}
			*application = *built
			cleanup = done

			return nil
		},
	}

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "set the config file path")
	rootCmd.PersistentFlags().StringVarP(&storePath, "store", "s", "", "override the store path")
	viper.BindPFlag("store.path", rootCmd.PersistentFlags().Lookup("store"))

	rootCmd.AddCommand(account.NewAccountCmd(application))
	rootCmd.AddCommand(storecmd.NewStoreCmd(application, migrations))

	rootCmd.AddCommand(NewDepositCmd(application))
	rootCmd.AddCommand(NewWithdrawCmd(application))
	rootCmd.AddCommand(NewTransferCmd(application))
	rootCmd.AddCommand(NewInfoCmd(application))
	rootCmd.AddCommand(NewServeCmd(application))
	rootCmd.AddCommand(NewInitCmd(application))

	return rootCmd, func() { cleanup() }
}

func initConfig() (*config.Config, error) {
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		appDir, err := app.DataDir()
		if err != nil {
			return nil, fmt.Errorf("error getting app dir: %w", err)
		}

		viper.AddConfigPath(appDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if err := createDefaultConfig(appDir); err != nil {
			return nil, fmt.Errorf("failed to ensure config file: %w", err)
		}
	}

	config.BindEnv(viper.GetViper())

	if err := viper.ReadInConfig(); err != nil {
		if cfgFile != "" {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, fmt.Errorf("config file error: %w", err)
		}
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}

	if err := validation.ValidateCurrency(cfg.Defaults.Currency); err != nil {
		return nil, fmt.Errorf("invalid defaults.currency: %w", err)
	}

	return cfg, nil
}

func createDefaultConfig(appDir string) error {
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	configPath := filepath.Join(appDir, "config.yaml")

	if _, err := os.Stat(configPath); err == nil {
		return nil
	}

	// a fresh instance keeps flag and env overrides out of the file
	defaults := viper.New()
	config.SetDefaults(defaults)

	if err := defaults.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
