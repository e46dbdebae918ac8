package views

import (
	"github.com/hance08/bankbook/internal/ui"
	"github.com/hance08/bankbook/internal/utils"
	"github.com/pterm/pterm"
)

// BalanceChange is one account touched by an operation.
type BalanceChange struct {
	ID     string
	Name   string
	Before int64
	After  int64
}

type OperationResultItem struct {
	Title    string
	Amount   int64
	Currency string
	Changes  []BalanceChange
}

func OperationResultData(item OperationResultItem) pterm.TableData {
	tableData := pterm.TableData{{"ID", "Name", "Before", "After"}}

	for _, c := range item.Changes {
		after := utils.FormatWithCurrency(c.After, item.Currency)
		switch {
		case c.After > c.Before:
			after = pterm.Green(after)
		case c.After < c.Before:
			after = pterm.Red(after)
		}

		tableData = append(tableData, []string{
			c.ID,
			c.Name,
			utils.FormatWithCurrency(c.Before, item.Currency),
			after,
		})
	}

	return tableData
}

func RenderOperationResult(item OperationResultItem) error {
	ui.Separator()

	if err := pterm.DefaultTable.WithHasHeader().WithData(OperationResultData(item)).Render(); err != nil {
		return err
	}

	pterm.Success.Printf("%s of %s completed\n", item.Title, utils.FormatWithCurrency(item.Amount, item.Currency))
	return nil
}
