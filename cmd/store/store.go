package store

import (
	"io/fs"

	"github.com/hance08/bankbook/internal/app"
	"github.com/spf13/cobra"
)

func NewStoreCmd(a *app.App, migrations fs.FS) *cobra.Command {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Inspect, verify and copy the account store.",
		Long: `Inspect, verify and copy the account store. These commands read the store
directly, so they also work when the ledger refuses to load it.`,
	}

	storeCmd.AddCommand(NewDumpCmd(a, migrations))
	storeCmd.AddCommand(NewVerifyCmd(a, migrations))
	storeCmd.AddCommand(NewCopyCmd(a, migrations))

	return storeCmd
}

func skipLedger() map[string]string {
	return map[string]string{app.SkipLedgerAnnotation: "true"}
}
