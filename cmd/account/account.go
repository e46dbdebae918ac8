package account

import (
	"github.com/hance08/bankbook/internal/app"
	"github.com/spf13/cobra"
)

func NewAccountCmd(a *app.App) *cobra.Command {
	accountCmd := &cobra.Command{
		Use:   "account",
		Short: "Create, rename and inspect accounts.",
		Long:  `Create, rename and inspect accounts, or show the list of all accounts.`,
	}

	accountCmd.AddCommand(NewCreateCmd(a))
	accountCmd.AddCommand(NewListCmd(a))
	accountCmd.AddCommand(NewShowCmd(a))
	accountCmd.AddCommand(NewRenameCmd(a))

	return accountCmd
}
