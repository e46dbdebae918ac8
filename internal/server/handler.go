package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hance08/bankbook/internal/model"
)

// AccountService is the part of the ledger the API exposes.
type AccountService interface {
	CreateAccount(name, accType string) (string, error)
	ViewAccount(id string) (*model.Account, error)
	DisplayAllAccounts() []*model.Account
	RenameAccount(id, name string) error
	Deposit(id string, amount int64) error
	WithdrawCash(id string, amount int64) error
	Transfer(fromID, toID string, amount int64) error
}

type AccountHandler struct {
	svc AccountService
}

func NewAccountHandler(svc AccountService) *AccountHandler {
	return &AccountHandler{svc: svc}
}

func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	id, err := h.svc.CreateAccount(req.Name, req.Type)
	if err != nil {
		writeError(w, mapLedgerError(err), "failed to create account", err.Error())
		return
	}

	acc, err := h.svc.ViewAccount(id)
	if err != nil {
		writeError(w, mapLedgerError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, AccountFromModel(acc))
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	acc, err := h.svc.ViewAccount(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, mapLedgerError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, AccountFromModel(acc))
}

func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts := h.svc.DisplayAllAccounts()

	writeJSON(w, http.StatusOK, ListAccountsResponse{
		Accounts: AccountsFromModel(accounts),
		Total:    len(accounts),
	})
}

func (h *AccountHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req RenameAccountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.svc.RenameAccount(id, req.Name); err != nil {
		writeError(w, mapLedgerError(err), "failed to rename account", err.Error())
		return
	}

	h.writeOperation(w, id)
}

func (h *AccountHandler) Deposit(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, "deposit", h.svc.Deposit)
}

func (h *AccountHandler) Withdraw(w http.ResponseWriter, r *http.Request) {
	h.applyAmount(w, r, "withdraw", h.svc.WithdrawCash)
}

func (h *AccountHandler) applyAmount(w http.ResponseWriter, r *http.Request, op string, apply func(string, int64) error) {
	var req AmountRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	id := chi.URLParam(r, "id")
	if err := apply(id, req.Amount); err != nil {
		writeError(w, mapLedgerError(err), "failed to "+op, err.Error())
		return
	}

	h.writeOperation(w, id)
}

func (h *AccountHandler) writeOperation(w http.ResponseWriter, id string) {
	acc, err := h.svc.ViewAccount(id)
	if err != nil {
		writeError(w, mapLedgerError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, OperationResponse{Success: true, Account: AccountFromModel(acc)})
}

type TransferHandler struct {
	svc AccountService
}

func NewTransferHandler(svc AccountService) *TransferHandler {
	return &TransferHandler{svc: svc}
}

func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req TransferRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := h.svc.Transfer(req.FromID, req.ToID, req.Amount); err != nil {
		writeError(w, mapLedgerError(err), "failed to transfer", err.Error())
		return
	}

	from, err := h.svc.ViewAccount(req.FromID)
	if err != nil {
		writeError(w, mapLedgerError(err), "failed to get account", err.Error())
		return
	}
	to, err := h.svc.ViewAccount(req.ToID)
	if err != nil {
		writeError(w, mapLedgerError(err), "failed to get account", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, TransferResponse{
		Success: true,
		From:    AccountFromModel(from),
		To:      AccountFromModel(to),
	})
}

func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
