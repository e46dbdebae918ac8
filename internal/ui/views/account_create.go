package views

import (
	"github.com/hance08/bankbook/internal/model"
	"github.com/hance08/bankbook/internal/ui"
	"github.com/hance08/bankbook/internal/utils"
	"github.com/pterm/pterm"
)

func AccountDetailData(acc *model.Account, currency string) pterm.TableData {
	return pterm.TableData{
		{pterm.Blue("Account ID"), acc.ID},
		{pterm.Blue("Name"), acc.Name},
		{pterm.Blue("Type"), acc.Type.Label()},
		{pterm.Blue("Balance"), utils.FormatWithCurrency(acc.Balance, currency)},
	}
}

func RenderAccountDetail(acc *model.Account, currency string) error {
	ui.Separator()
	return pterm.DefaultTable.WithData(AccountDetailData(acc, currency)).Render()
}

func RenderAccountSuccess(acc *model.Account, currency string) error {
	if err := RenderAccountDetail(acc, currency); err != nil {
		return err
	}

	pterm.Success.Print("Account created successfully!\n")

	return nil
}
