package account

import (
	"github.com/hance08/bankbook/internal/app"
	"github.com/hance08/bankbook/internal/model"
	"github.com/hance08/bankbook/internal/ui/views"
	"github.com/spf13/cobra"
)

type listFlags struct {
	Type string
}

type ListCommandRunner struct {
	app   *app.App
	flags *listFlags
}

func NewListCmd(a *app.App) *cobra.Command {
	flags := &listFlags{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all accounts with their balances",
		Long: `List all accounts in creation order with their current balances.
You can filter by account type.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := &ListCommandRunner{
				app:   a,
				flags: flags,
			}
			return runner.Run()
		},
	}

	cmd.Flags().StringVarP(&flags.Type, "type", "t", "", "Filter accounts by type (checking, savings)")

	return cmd
}

func (r *ListCommandRunner) Run() error {
	accounts := r.app.Ledger.DisplayAllAccounts()

	if r.flags.Type != "" {
		t, err := model.ParseAccountType(r.flags.Type)
		if err != nil {
			return err
		}
		accounts = filterByType(accounts, t)
	}

	return views.NewAccountListView(r.app.Config.Defaults.Currency).Render(accounts)
}

func filterByType(accounts []*model.Account, t model.AccountType) []*model.Account {
	var filtered []*model.Account
	for _, acc := range accounts {
		if acc.Type == t {
			filtered = append(filtered, acc)
		}
	}
	return filtered
}
