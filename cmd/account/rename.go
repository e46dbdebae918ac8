package account

import (
	"fmt"
	"strings"

	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/ui/prompts"
	"github.com/hance08/bankbook/internal/ui/views"
	"github.com/hance08/bankbook/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type RenameCommandRunner struct {
	app *app.App
}

func NewRenameCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "rename [account-id] [new-name]",
		Short: "Change the holder name of an account",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &RenameCommandRunner{app: a}
			return runner.Run(argAt(args, 0), argAt(args, 1))
		},
	}
}

func (r *RenameCommandRunner) Run(idArg, name string) error {
	currency := r.app.Config.Defaults.Currency

	id, err := prompts.ResolveAccountID(idArg, "Account to rename:", r.app.Ledger.DisplayAllAccounts(), currency,
		validation.NewAccountValidator(r.app.Ledger).ValidateExistingAccount)
	if err != nil {
		return err
	}

	if name == "" {
		name, err = prompts.PromptAccountName(validation.ValidateAccountName)
		if err != nil {
			return err
		}
	} else if err := validation.ValidateAccountName(name); err != nil {
		return fmt.Errorf("invalid account name: %w", err)
	}

	if err := r.app.Ledger.RenameAccount(id, strings.TrimSpace(name)); err != nil {
		return fmt.Errorf("failed to rename account: %w", err)
	}

	acc, err := r.app.Ledger.ViewAccount(id)
	if err != nil {
		return err
	}

	if err := views.RenderAccountDetail(acc, currency); err != nil {
		return err
	}
	pterm.Success.Println("Account renamed successfully!")
	return nil
}
