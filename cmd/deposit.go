package cmd

import (
	"fmt"

	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/constants"
	"github.com/hance08/bankbook/internal/ui/prompts"
	"github.com/hance08/bankbook/internal/ui/views"
	"github.com/hance08/bankbook/internal/utils"
	"github.com/hance08/bankbook/internal/validation"
	"github.com/spf13/cobra"
)

// cashRunner applies a single-account operation (deposit or withdrawal)
type cashRunner struct {
	app   *app.App
	op    string
	title string
	apply func(id string, amount int64) error
}

func NewDepositCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "deposit [account-id] [amount]",
		Short: "Deposit money into an account",
		Long: `Add money to an account balance. Amounts are typed in major units,
e.g. 150 or 150.50. Missing arguments are asked for interactively.`,
		Example: `  bankbook deposit 12345678 100`,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &cashRunner{
				app:   a,
				op:    constants.OpDeposit,
				title: "Deposit",
				apply: a.Ledger.Deposit,
			}
			return runner.Run(argAt(args, 0), argAt(args, 1))
		},
	}
}

func NewWithdrawCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "withdraw [account-id] [amount]",
		Short: "Withdraw cash from an account",
		Long: `Take money out of an account balance. Amounts are typed in major units.
Withdrawing more than the balance fails unless ledger.allow_overdraft is set.`,
		Example: `  bankbook withdraw 12345678 20.50`,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &cashRunner{
				app:   a,
				op:    constants.OpWithdraw,
				title: "Withdrawal",
				apply: a.Ledger.WithdrawCash,
			}
			return runner.Run(argAt(args, 0), argAt(args, 1))
		},
	}
}

func (r *cashRunner) Run(idArg, amountArg string) error {
	currency := r.app.Config.Defaults.Currency

	id, err := prompts.ResolveAccountID(idArg, r.title+" account:", r.app.Ledger.DisplayAllAccounts(), currency,
		validation.NewAccountValidator(r.app.Ledger).ValidateExistingAccount)
	if err != nil {
		return err
	}

	before, err := r.app.Ledger.ViewAccount(id)
	if err != nil {
		return err
	}

	amount, err := resolveAmount(amountArg, r.title+" amount:")
	if err != nil {
		return err
	}

	if err := r.apply(id, amount); err != nil {
		return fmt.Errorf("%s failed: %w", r.op, err)
	}

	after, err := r.app.Ledger.ViewAccount(id)
	if err != nil {
		return err
	}

	return views.RenderOperationResult(views.OperationResultItem{
		Title:    r.title,
		Amount:   amount,
		Currency: currency,
		Changes: []views.BalanceChange{
			{ID: id, Name: after.Name, Before: before.Balance, After: after.Balance},
		},
	})
}

// resolveAmount parses arg, or prompts for it when empty, returning cents
func resolveAmount(arg, title string) (int64, error) {
	if arg == "" {
		input, err := prompts.PromptAmount(title, "e.g. 150 or 150.50", validation.ValidateAmount)
		if err != nil {
			return 0, err
		}
		arg = input
	}

	if err := validation.ValidateAmount(arg); err != nil {
		return 0, err
	}
	return utils.ParseToCents(arg)
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
