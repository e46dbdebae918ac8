package store

import (
	"fmt"
	"io/fs"

	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/codec"
	"github.com/hance08/bankbook/internal/model"
	bookstore "github.com/hance08/bankbook/internal/store"
	"github.com/hance08/bankbook/internal/utils"
	"github.com/pterm/pterm"
	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// VerifyReport summarises a readable store.
type VerifyReport struct {
	Backend      string
	Path         string
	Exists       bool
	Accounts     int
	Total        decimal.Decimal
	UnknownTypes []string // IDs whose stored type is neither checking nor savings
}

type VerifyCommandRunner struct {
	app        *app.App
	migrations fs.FS
	fs         afero.Fs
}

func NewVerifyCmd(a *app.App, migrations fs.FS) *cobra.Command {
	return &cobra.Command{
		Use:         "verify",
		Short:       "Check that the store can be read",
		Long:        `Decode and parse the store, reporting the number of accounts and any entries that need attention.`,
		Annotations: skipLedger(),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &VerifyCommandRunner{
				app:        a,
				migrations: migrations,
				fs:         afero.NewOsFs(),
			}

			report, err := runner.Verify()
			if err != nil {
				return err
			}
			return renderReport(report, a.Config.Defaults.Currency)
		},
	}
}

func (r *VerifyCommandRunner) Verify() (VerifyReport, error) {
	cfg, err := app.StoreConfig(r.app.Config)
	if err != nil {
		return VerifyReport{}, err
	}

	report := VerifyReport{Backend: cfg.Backend, Path: cfg.Path, Exists: true}

	var snap bookstore.Snapshot
	if cfg.Backend == bookstore.BackendFile {
		fileStore := bookstore.NewFileStore(r.fs, cfg.Path, codec.NewBase64())
		report.Path = fileStore.Path()

		report.Exists, err = fileStore.Exists()
		if err != nil {
			return report, err
		}
		if !report.Exists {
			return report, nil
		}

		snap, err = fileStore.Load()
	} else {
		var st bookstore.Store
		st, err = bookstore.Open(cfg, r.migrations)
		if err != nil {
			return report, err
		}
		defer st.Close()

		snap, err = st.Load()
	}
	if err != nil {
		return report, fmt.Errorf("store %s is not readable: %w", report.Path, err)
	}

	report.Accounts = len(snap)
	report.Total = snap.Total()
	for _, e := range snap {
		if e.Record.Type != model.Checking.String() && e.Record.Type != model.Savings.String() {
			report.UnknownTypes = append(report.UnknownTypes, e.ID)
		}
	}

	return report, nil
}

func renderReport(report VerifyReport, currency string) error {
	if !report.Exists {
		pterm.Info.Printf("No store at %s yet, it will be created on the first change\n", report.Path)
		return nil
	}

	tableData := pterm.TableData{
		{"Backend", report.Backend},
		{"Path", report.Path},
		{"Accounts", fmt.Sprintf("%d", report.Accounts)},
		{"Total Balance", utils.FormatDecimalWithCurrency(report.Total, currency)},
	}
	if err := pterm.DefaultTable.WithData(tableData).Render(); err != nil {
		return err
	}

	for _, id := range report.UnknownTypes {
		pterm.Warning.Printf("Account %s has an unrecognized type and is read as savings\n", id)
	}

	pterm.Success.Println("Store is readable")
	return nil
}
