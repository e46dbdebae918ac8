package server

import (
	"github.com/hance08/bankbook/internal/model"
	"github.com/hance08/bankbook/internal/utils"
)

type CreateAccountRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type RenameAccountRequest struct {
	Name string `json:"name"`
}

// AmountRequest carries an amount in minor units.
type AmountRequest struct {
	Amount int64 `json:"amount"`
}

type TransferRequest struct {
	FromID string `json:"from_id"`
	ToID   string `json:"to_id"`
	Amount int64  `json:"amount"`
}

type AccountResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	Balance          int64  `json:"balance"`
	BalanceFormatted string `json:"balance_formatted"`
}

func AccountFromModel(a *model.Account) *AccountResponse {
	return &AccountResponse{
		ID:               a.ID,
		Name:             a.Name,
		Type:             a.Type.String(),
		Balance:          a.Balance,
		BalanceFormatted: utils.FormatFromCents(a.Balance),
	}
}

func AccountsFromModel(accounts []*model.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromModel(a)
	}
	return result
}

type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int                `json:"total"`
}

type OperationResponse struct {
	Success bool             `json:"success"`
	Account *AccountResponse `json:"account,omitempty"`
}

type TransferResponse struct {
	Success bool             `json:"success"`
	From    *AccountResponse `json:"from"`
	To      *AccountResponse `json:"to"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
