package views

import (
	"fmt"

	"github.com/pterm/pterm"
)

type SystemInfoItem struct {
	ConfigPath      string
	StoreBackend    string
	StorePath       string
	StoreExists     bool // true = Found, false = Not Found
	Accounts        int
	TotalBalance    string
	DefaultCurrency string
	AllowOverdraft  bool
	AppDataDir      string
}

func SystemInfoData(data SystemInfoItem) pterm.TableData {
	storeStatus := pterm.Green("Found")
	if !data.StoreExists {
		storeStatus = pterm.Red("Not Found (Will be created)")
	}

	overdraft := "Forbidden"
	if data.AllowOverdraft {
		overdraft = "Allowed"
	}

	return pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Store Backend", data.StoreBackend},
		{"Store Path", data.StorePath},
		{"Store Status", storeStatus},
		{"Accounts", fmt.Sprintf("%d", data.Accounts)},
		{"Total Balance", data.TotalBalance},
		{"Default Currency", data.DefaultCurrency},
		{"Overdraft", overdraft},
		{"AppData Directory", data.AppDataDir},
	}
}

func RenderSystemInfo(data SystemInfoItem) error {
	return pterm.DefaultTable.WithData(SystemInfoData(data)).Render()
}
