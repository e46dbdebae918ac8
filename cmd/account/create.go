package account

import (
	"fmt"
	"strings"

	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/ledger"
	"github.com/hance08/bankbook/internal/ui"
	"github.com/hance08/bankbook/internal/ui/prompts"
	"github.com/hance08/bankbook/internal/ui/views"
	"github.com/hance08/bankbook/internal/validation"
	"github.com/spf13/cobra"
)

type createFlags struct {
	Name string
	Type string
}

type CreateCommandRunner struct {
	app   *app.App
	flags *createFlags
}

func NewCreateCmd(a *app.App) *cobra.Command {
	flags := &createFlags{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new account.",
		Long: `Create a checking or savings account with a zero balance.
Run without flags to be asked for the holder name and type.

Example: bankbook account create -n Alice -t checking`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &CreateCommandRunner{
				app:   a,
				flags: flags,
			}

			if cmd.Flags().Changed("name") || cmd.Flags().Changed("type") {
				return runner.FlagsMode()
			}
			return runner.InteractiveMode()
		},
	}

	cmd.Flags().StringVarP(&flags.Name, "name", "n", "", "Account holder name")
	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Account type: checking or savings")

	return cmd
}

// FlagsMode creates the account from command-line flags
func (r *CreateCommandRunner) FlagsMode() error {
	if err := validation.ValidateAccountName(r.flags.Name); err != nil {
		return fmt.Errorf("invalid account name: %w", err)
	}
	if r.flags.Type == "" {
		return fmt.Errorf("must enter --type (checking or savings)")
	}
	if err := validation.ValidateAccountType(r.flags.Type); err != nil {
		return fmt.Errorf("%w: %v", ledger.ErrValidation, err)
	}

	return r.create(strings.TrimSpace(r.flags.Name), r.flags.Type)
}

// InteractiveMode asks for the account details
func (r *CreateCommandRunner) InteractiveMode() error {
	ui.PrintL2Title("New Account")

	name, err := prompts.PromptAccountName(validation.ValidateAccountName)
	if err != nil {
		return err
	}

	accType, err := prompts.PromptAccountType()
	if err != nil {
		return err
	}

	return r.create(strings.TrimSpace(name), accType)
}

func (r *CreateCommandRunner) create(name, accType string) error {
	id, err := r.app.Ledger.CreateAccount(name, accType)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	acc, err := r.app.Ledger.ViewAccount(id)
	if err != nil {
		return err
	}

	return views.RenderAccountSuccess(acc, r.app.Config.Defaults.Currency)
}
