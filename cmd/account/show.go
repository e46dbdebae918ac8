package account

import (
	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/ui/prompts"
	"github.com/hance08/bankbook/internal/ui/views"
	"github.com/hance08/bankbook/internal/validation"
	"github.com/spf13/cobra"
)

type ShowCommandRunner struct {
	app *app.App
}

func NewShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show [account-id]",
		Short: "Show one account",
		Long:  `Show the holder, type and balance of an account. Without an ID you pick from a list.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ShowCommandRunner{app: a}
			return runner.Run(argAt(args, 0))
		},
	}
}

func (r *ShowCommandRunner) Run(idArg string) error {
	currency := r.app.Config.Defaults.Currency

	id, err := prompts.ResolveAccountID(idArg, "Account:", r.app.Ledger.DisplayAllAccounts(), currency,
		validation.NewAccountValidator(r.app.Ledger).ValidateExistingAccount)
	if err != nil {
		return err
	}

	acc, err := r.app.Ledger.ViewAccount(id)
	if err != nil {
		return err
	}

	return views.RenderAccountDetail(acc, currency)
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
