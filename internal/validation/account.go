package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/hance08/bankbook/internal/constants"
	"github.com/hance08/bankbook/internal/model"
	"github.com/hance08/bankbook/internal/utils"
)

// AccountLookup is the read side of the ledger the validators need.
// This prevents circular dependency with the ledger package
type AccountLookup interface {
	ViewAccount(id string) (*model.Account, error)
}

// AccountValidator checks input against existing accounts
type AccountValidator struct {
	accounts AccountLookup
}

func NewAccountValidator(accounts AccountLookup) *AccountValidator {
	return &AccountValidator{accounts: accounts}
}

// ValidateExistingAccount checks that id names an account. A lookup miss keeps
// the lookup error and notes a malformed ID when there is one.
func (v *AccountValidator) ValidateExistingAccount(id string) error {
	id = strings.TrimSpace(id)

	_, err := v.accounts.ViewAccount(id)
	if err == nil {
		return nil
	}

	if formatErr := ValidateAccountID(id); formatErr != nil {
		return fmt.Errorf("%w (%v)", err, formatErr)
	}
	return err
}

// ValidateAccountName rejects blank and overlong holder names typed at the prompt
func ValidateAccountName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("account name can't be empty")
	}

	if utf8.RuneCountInString(name) > constants.MaxNameLen {
		return fmt.Errorf("account name too long (max %d characters)", constants.MaxNameLen)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("account name can't contain control characters")
		}
	}
	return nil
}

func ValidateAccountType(accType string) error {
	_, err := model.ParseAccountType(accType)
	return err
}

// ValidateAccountID checks the shape of an account ID
func ValidateAccountID(id string) error {
	id = strings.TrimSpace(id)

	if id == "" {
		return fmt.Errorf("account ID can't be empty")
	}

	if len(id) != constants.IDLength {
		return fmt.Errorf("account ID must be %d digits", constants.IDLength)
	}

	for _, c := range id {
		if c < '0' || c > '9' {
			return fmt.Errorf("account ID must contain only digits")
		}
	}
	return nil
}

// ValidateAmount checks a typed amount in major units, e.g. "150.50"
func ValidateAmount(input string) error {
	cents, err := utils.ParseToCents(input)
	if err != nil {
		return err
	}

	if cents <= 0 {
		return fmt.Errorf("amount must be greater than 0")
	}
	return nil
}

// ValidateCurrency validates a currency code format
func ValidateCurrency(currency string) error {
	currency = strings.TrimSpace(strings.ToUpper(currency))

	if currency == "" {
		return nil // Empty is allowed (will use default)
	}

	if len(currency) != 3 {
		return fmt.Errorf("currency code must be 3 characters (e.g. USD)")
	}

	for _, c := range currency {
		if c < 'A' || c > 'Z' {
			return fmt.Errorf("currency code must contain only letters")
		}
	}

	return nil
}
