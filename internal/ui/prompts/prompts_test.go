package prompts

import (
	"errors"
	"testing"

	"github.com/hance08/bankbook/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchOption(t *testing.T) {
	options := []string{"USD - US Dollar", "EUR - Euro", "TWD"}

	assert.Equal(t, "TWD", matchOption(options, "TWD"))
	assert.Equal(t, "EUR - Euro", matchOption(options, "EUR"))
	assert.Equal(t, "JPY", matchOption(options, "JPY"))
	assert.Equal(t, "", matchOption(options, ""))
}

func TestAccountOptionLabel(t *testing.T) {
	acc := model.NewAccount("12345678", "Alice", model.Savings)
	acc.Balance = 15050

	assert.Equal(t, "12345678  Alice (Savings)  150.50 USD", AccountOptionLabel(acc, "USD"))
	assert.Equal(t, "12345678  Alice (Savings)  150.50", AccountOptionLabel(acc, ""))
}

func TestPromptAccount_NoAccounts(t *testing.T) {
	_, err := PromptAccount("From:", nil, "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account create")
}

func TestResolveAccountID_UsesArgument(t *testing.T) {
	id, err := ResolveAccountID(" 12345678 ", "From:", nil, "USD", nil)
	require.NoError(t, err)
	assert.Equal(t, "12345678", id)
}

func TestResolveAccountID_ValidatesArgument(t *testing.T) {
	errUnknown := errors.New("unknown account")
	validate := func(id string) error {
		if id != "12345678" {
			return errUnknown
		}
		return nil
	}

	id, err := ResolveAccountID("12345678", "From:", nil, "USD", validate)
	require.NoError(t, err)
	assert.Equal(t, "12345678", id)

	_, err = ResolveAccountID("87654321", "From:", nil, "USD", validate)
	assert.ErrorIs(t, err, errUnknown)
}
