package prompts

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/hance08/bankbook/internal/model"
	"github.com/hance08/bankbook/internal/utils"
)

// PromptAccountType prompts for account type selection
func PromptAccountType() (string, error) {
	selected := model.Checking.String()

	var options []huh.Option[string]
	for _, t := range model.AccountTypes {
		options = append(options, huh.NewOption(t.Label(), t.String()))
	}

	err := huh.NewSelect[string]().
		Title("Account Type:").
		Options(options...).
		Value(&selected).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	return selected, nil
}

// PromptAccountName prompts for the account holder name with validation
func PromptAccountName(validator func(string) error) (string, error) {
	return PromptInput("Account Holder Name:", "", validator)
}

// PromptAccount lets the user pick one of accounts, returning its ID
func PromptAccount(title string, accounts []*model.Account, currency string) (string, error) {
	if len(accounts) == 0 {
		return "", fmt.Errorf("no accounts available, create one with 'bankbook account create'")
	}

	var options []huh.Option[string]
	for _, acc := range accounts {
		options = append(options, huh.NewOption(AccountOptionLabel(acc, currency), acc.ID))
	}

	var selected string

	err := huh.NewSelect[string]().
		Title(title).
		Options(options...).
		Value(&selected).
		Height(10).
		Run()
	if err != nil {
		return "", fmt.Errorf("input cancelled: %w", err)
	}

	return selected, nil
}

// AccountOptionLabel renders an account as a single select line,
// e.g. "12345678  Alice (Checking)  150.00 USD".
func AccountOptionLabel(acc *model.Account, currency string) string {
	return fmt.Sprintf("%s  %s (%s)  %s",
		acc.ID, acc.Name, acc.Type.Label(), utils.FormatWithCurrency(acc.Balance, currency))
}

// ResolveAccountID checks arg with validate when given, otherwise asks the
// user to pick from accounts.
func ResolveAccountID(arg, title string, accounts []*model.Account, currency string, validate func(string) error) (string, error) {
	if arg == "" {
		return PromptAccount(title, accounts, currency)
	}

	id := strings.TrimSpace(arg)
	if validate != nil {
		if err := validate(id); err != nil {
			return "", err
		}
	}
	return id, nil
}
