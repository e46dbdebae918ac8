package prompts

import (
	"errors"
	"strings"

	"github.com/charmbracelet/huh"
)

// InitSettings holds the answers collected by the setup wizard.
type InitSettings struct {
	Currency       string
	Backend        string
	AllowOverdraft bool
}

// PromptInitSettings walks through the first-time configuration.
func PromptInitSettings(current InitSettings, backends []string) (InitSettings, error) {
	currency, err := PromptInitCurrency(current.Currency)
	if err != nil {
		return InitSettings{}, err
	}

	backend, err := PromptSelect("Where should accounts be stored?", backends, current.Backend)
	if err != nil {
		return InitSettings{}, err
	}

	overdraft, err := PromptConfirm("Allow withdrawals below a zero balance?", current.AllowOverdraft)
	if err != nil {
		return InitSettings{}, err
	}

	return InitSettings{
		Currency:       currency,
		Backend:        backend,
		AllowOverdraft: overdraft,
	}, nil
}

func PromptInitCurrency(currDefault string) (string, error) {
	selection := currDefault

	err := huh.NewSelect[string]().
		Title("Welcome to bankbook! Please set the default currency:").
		Description("The currency code is shown next to every balance").
		Options(
			huh.NewOption("USD", "USD"),
			huh.NewOption("TWD", "TWD"),
			huh.NewOption("JPY", "JPY"),
			huh.NewOption("EUR", "EUR"),
			huh.NewOption("CNY", "CNY"),
			huh.NewOption("Other", "Other"),
		).
		Value(&selection).
		Run()

	if err != nil {
		return "", err
	}

	finalCurrency := selection
	if selection == "Other" {
		var customInput string
		err := huh.NewInput().
			Title("Please enter the currency code:").
			Description("Please use the ISO 4217 standard 3-letter currency code.").
			Value(&customInput).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("currency code is required")
				}
				return nil
			}).
			Run()

		if err != nil {
			return "", err
		}

		finalCurrency = strings.ToUpper(strings.TrimSpace(customInput))
	}

	return finalCurrency, nil
}
