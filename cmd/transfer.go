package cmd

import (
	"fmt"

	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/ui"
	"github.com/hance08/bankbook/internal/ui/prompts"
	"github.com/hance08/bankbook/internal/ui/views"
	"github.com/hance08/bankbook/internal/utils"
	"github.com/hance08/bankbook/internal/validation"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type transferFlags struct {
	Yes bool
}

type transferRunner struct {
	app     *app.App
	flags   *transferFlags
	confirm func(message string) (bool, error)
}

func NewTransferCmd(a *app.App) *cobra.Command {
	flags := &transferFlags{}

	cmd := &cobra.Command{
		Use:   "transfer [from-id] [to-id] [amount]",
		Short: "Move money between two accounts",
		Long: `Move money from one account to another. Both balances are saved together,
so either both change or neither does.`,
		Example: `  bankbook transfer 12345678 87654321 40 --yes`,
		Args:    cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &transferRunner{
				app:     a,
				flags:   flags,
				confirm: surveyConfirm,
			}
			return runner.Run(argAt(args, 0), argAt(args, 1), argAt(args, 2))
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip the confirmation prompt")

	return cmd
}

func (r *transferRunner) Run(fromArg, toArg, amountArg string) error {
	currency := r.app.Config.Defaults.Currency
	accounts := r.app.Ledger.DisplayAllAccounts()
	validator := validation.NewAccountValidator(r.app.Ledger)

	fromID, err := prompts.ResolveAccountID(fromArg, "From account:", accounts, currency, existsAs("source", validator))
	if err != nil {
		return err
	}
	toID, err := prompts.ResolveAccountID(toArg, "To account:", accounts, currency, existsAs("destination", validator))
	if err != nil {
		return err
	}

	from, err := r.app.Ledger.ViewAccount(fromID)
	if err != nil {
		return fmt.Errorf("source %w", err)
	}
	to, err := r.app.Ledger.ViewAccount(toID)
	if err != nil {
		return fmt.Errorf("destination %w", err)
	}

	amount, err := resolveAmount(amountArg, "Transfer amount:")
	if err != nil {
		return err
	}

	if !r.flags.Yes {
		message := fmt.Sprintf("Transfer %s from %s (%s) to %s (%s)?",
			utils.FormatWithCurrency(amount, currency), from.Name, from.ID, to.Name, to.ID)

		ok, err := r.confirm(message)
		if err != nil {
			return err
		}
		if !ok {
			pterm.Info.Println("Transfer cancelled")
			return nil
		}
	}

	if err := r.app.Ledger.Transfer(fromID, toID, amount); err != nil {
		return fmt.Errorf("transfer failed: %w", err)
	}

	fromAfter, err := r.app.Ledger.ViewAccount(fromID)
	if err != nil {
		return err
	}
	toAfter, err := r.app.Ledger.ViewAccount(toID)
	if err != nil {
		return err
	}

	return views.RenderOperationResult(views.OperationResultItem{
		Title:    "Transfer",
		Amount:   amount,
		Currency: currency,
		Changes: []views.BalanceChange{
			{ID: fromID, Name: fromAfter.Name, Before: from.Balance, After: fromAfter.Balance},
			{ID: toID, Name: toAfter.Name, Before: to.Balance, After: toAfter.Balance},
		},
	})
}

func surveyConfirm(message string) (bool, error) {
	return ui.Confirm(message, false)
}

// existsAs prefixes lookup failures with the account's role in the transfer.
func existsAs(role string, v *validation.AccountValidator) func(string) error {
	return func(id string) error {
		if err := v.ValidateExistingAccount(id); err != nil {
			return fmt.Errorf("%s %w", role, err)
		}
		return nil
	}
}
