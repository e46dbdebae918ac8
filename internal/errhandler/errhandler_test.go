package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/bankbook/internal/codec"
	"github.com/hance08/bankbook/internal/ledger"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestIsCancelled(t *testing.T) {
	assert.True(t, IsCancelled(terminal.InterruptErr))
	assert.True(t, IsCancelled(fmt.Errorf("input cancelled: %w", huh.ErrUserAborted)))
	assert.False(t, IsCancelled(errors.New("interrupted by something else")))
}

func TestMessage(t *testing.T) {
	err := fmt.Errorf("%w: 12345678", ledger.ErrNotFound)
	assert.Equal(t, "Account not found: 12345678", Message(err))

	err = fmt.Errorf("%w: account 1 has 0, needs 5", ledger.ErrInsufficientFunds)
	assert.Contains(t, Message(err), "ledger.allow_overdraft")

	err = fmt.Errorf("failed to load accounts: %w", codec.ErrDecode)
	assert.Contains(t, Message(err), "store verify")

	assert.Equal(t, "", capitalize(""))
	assert.Equal(t, "Über", capitalize("über"))
}

func TestHandleError(t *testing.T) {
	pterm.DisableOutput()
	defer pterm.EnableOutput()

	assert.Equal(t, 0, HandleError(nil))
	assert.Equal(t, 0, HandleError(terminal.InterruptErr))
	assert.Equal(t, 1, HandleError(errors.New("boom")))
}
