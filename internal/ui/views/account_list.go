package views

import (
	"github.com/hance08/bankbook/internal/model"
	"github.com/hance08/bankbook/internal/utils"
	"github.com/pterm/pterm"
)

type AccountListView struct {
	currency string
}

func NewAccountListView(currency string) *AccountListView {
	return &AccountListView{currency: currency}
}

func (v *AccountListView) Render(accounts []*model.Account) error {
	if len(accounts) == 0 {
		pterm.Warning.Println("No accounts found, create one with 'bankbook account create'")
		return nil
	}

	pterm.DefaultSection.Printf("Account List")
	if err := pterm.DefaultTable.WithHasHeader().WithData(v.TableData(accounts)).Render(); err != nil {
		return err
	}

	var total int64
	for _, acc := range accounts {
		total += acc.Balance
	}
	pterm.Info.Printf("Total: %d accounts, %s\n", len(accounts), utils.FormatWithCurrency(total, v.currency))

	return nil
}

func (v *AccountListView) TableData(accounts []*model.Account) pterm.TableData {
	tableData := pterm.TableData{{"ID", "Name", "Type", "Balance"}}

	for _, acc := range accounts {
		balance := utils.FormatWithCurrency(acc.Balance, v.currency)

		var coloredType, coloredBalance string
		switch acc.Type {
		case model.Checking:
			coloredType = pterm.Cyan(acc.Type.Label())
		case model.Savings:
			coloredType = pterm.Green(acc.Type.Label())
		default:
			coloredType = acc.Type.Label()
		}

		if acc.Balance < 0 {
			coloredBalance = pterm.Red(balance)
		} else {
			coloredBalance = balance
		}

		tableData = append(tableData, []string{acc.ID, acc.Name, coloredType, coloredBalance})
	}

	return tableData
}
