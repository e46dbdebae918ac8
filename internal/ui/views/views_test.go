package views

import (
	"testing"

	"github.com/hance08/bankbook/internal/model"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableColor()
}

func sampleAccounts() []*model.Account {
	a := model.NewAccount("11111111", "Alice", model.Checking)
	a.Balance = 6000
	b := model.NewAccount("22222222", "Bob", model.Savings)
	b.Balance = -250
	return []*model.Account{a, b}
}

func TestAccountListView_TableData(t *testing.T) {
	data := NewAccountListView("USD").TableData(sampleAccounts())

	require.Len(t, data, 3)
	assert.Equal(t, []string{"ID", "Name", "Type", "Balance"}, data[0])
	assert.Equal(t, []string{"11111111", "Alice", "Checking", "60.00 USD"}, data[1])
	assert.Equal(t, []string{"22222222", "Bob", "Savings", "-2.50 USD"}, data[2])
}

func TestAccountListView_Render(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	v := NewAccountListView("")
	assert.NoError(t, v.Render(nil))
	assert.NoError(t, v.Render(sampleAccounts()))
}

func TestAccountDetailData(t *testing.T) {
	data := AccountDetailData(sampleAccounts()[0], "TWD")

	require.Len(t, data, 4)
	assert.Equal(t, "11111111", data[0][1])
	assert.Equal(t, "Alice", data[1][1])
	assert.Equal(t, "Checking", data[2][1])
	assert.Equal(t, "60.00 TWD", data[3][1])
}

func TestOperationResultData(t *testing.T) {
	data := OperationResultData(OperationResultItem{
		Title:    "Transfer",
		Amount:   4000,
		Currency: "USD",
		Changes: []BalanceChange{
			{ID: "11111111", Name: "Alice", Before: 10000, After: 6000},
			{ID: "22222222", Name: "Bob", Before: 0, After: 4000},
		},
	})

	require.Len(t, data, 3)
	assert.Equal(t, []string{"11111111", "Alice", "100.00 USD", "60.00 USD"}, data[1])
	assert.Equal(t, []string{"22222222", "Bob", "0.00 USD", "40.00 USD"}, data[2])
}

func TestSystemInfoData(t *testing.T) {
	data := SystemInfoData(SystemInfoItem{
		ConfigPath:      "/home/me/.config/bankbook/config.yaml",
		StoreBackend:    "file",
		StorePath:       "accounts.json",
		StoreExists:     false,
		Accounts:        2,
		TotalBalance:    "100.00 USD",
		DefaultCurrency: "USD",
		AllowOverdraft:  true,
	})

	assert.Equal(t, []string{"Store Backend", "file"}, data[1])
	assert.Equal(t, []string{"Store Status", "Not Found (Will be created)"}, data[3])
	assert.Equal(t, []string{"Accounts", "2"}, data[4])
	assert.Equal(t, []string{"Total Balance", "100.00 USD"}, data[5])
	assert.Equal(t, []string{"Overdraft", "Allowed"}, data[7])
}
