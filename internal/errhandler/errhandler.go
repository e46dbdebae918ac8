package errhandler

import (
	"errors"
	"unicode"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/hance08/bankbook/internal/codec"
	"github.com/hance08/bankbook/internal/ledger"
	"github.com/hance08/bankbook/internal/store"
	"github.com/pterm/pterm"
)

// HandleError prints err for the terminal and returns the process exit code.
func HandleError(err error) int {
	if err == nil {
		return 0
	}

	if IsCancelled(err) {
		pterm.Warning.Println("Operation Cancelled")
		return 0
	}

	pterm.Error.Println(Message(err))
	return 1
}

// IsCancelled reports whether err comes from the user aborting a prompt.
func IsCancelled(err error) bool {
	return errors.Is(err, terminal.InterruptErr) || errors.Is(err, huh.ErrUserAborted)
}

// Message turns err into the line shown to the user.
func Message(err error) string {
	msg := capitalize(err.Error())

	switch {
	case errors.Is(err, ledger.ErrInsufficientFunds):
		msg += "\nSet ledger.allow_overdraft to permit negative balances."
	case errors.Is(err, codec.ErrDecode), errors.Is(err, store.ErrCorrupt):
		msg += "\nRun 'bankbook store verify' for details."
	}

	return msg
}

func capitalize(s string) string {
	if len(s) == 0 {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
