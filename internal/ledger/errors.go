package ledger

import "errors"

var (
	ErrNotFound          = errors.New("account not found")
	ErrValidation        = errors.New("invalid input")
	ErrInsufficientFunds = errors.New("insufficient funds")
)
