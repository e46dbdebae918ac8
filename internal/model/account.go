package model

import (
	"fmt"
	"strings"
)

type AccountType int

const (
	Checking AccountType = iota
	Savings
)

// AccountTypes lists the supported types in display order.
var AccountTypes = []AccountType{Checking, Savings}

func (t AccountType) String() string {
	switch t {
	case Checking:
		return "checking"
	case Savings:
		return "savings"
	default:
		return fmt.Sprintf("AccountType(%d)", int(t))
	}
}

// Label returns the capitalised name shown in tables and prompts.
func (t AccountType) Label() string {
	switch t {
	case Checking:
		return "Checking"
	case Savings:
		return "Savings"
	default:
		return t.String()
	}
}

// ParseAccountType accepts "checking" or "savings" in any case.
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "checking":
		return Checking, nil
	case "savings":
		return Savings, nil
	default:
		return 0, fmt.Errorf("invalid account type '%s' (must be checking or savings)", s)
	}
}

// AccountTypeFromRecord maps a stored type label to an AccountType.
// Stores written before type validation existed may hold any label, so
// everything other than "checking" is read as Savings.
func AccountTypeFromRecord(s string) AccountType {
	if s == Checking.String() {
		return Checking
	}
	return Savings
}

// Account is a single holder's balance record. Balance is kept in minor
// currency units.
type Account struct {
	ID      string
	Name    string
	Type    AccountType
	Balance int64
}

// Record is the persisted form of an Account, keyed by ID in the store.
type Record struct {
	Name    string
	Type    string
	Balance int64
}

func NewAccount(id, name string, accType AccountType) *Account {
	return &Account{
		ID:   id,
		Name: name,
		Type: accType,
	}
}

func AccountFromRecord(id string, rec Record) *Account {
	return &Account{
		ID:      id,
		Name:    rec.Name,
		Type:    AccountTypeFromRecord(rec.Type),
		Balance: rec.Balance,
	}
}

func (a *Account) ToRecord() Record {
	return Record{
		Name:    a.Name,
		Type:    a.Type.String(),
		Balance: a.Balance,
	}
}

func (a *Account) Clone() *Account {
	cp := *a
	return &cp
}

func (a *Account) String() string {
	return fmt.Sprintf("ID: %s, Name: %s, Balance: %d, Type: %s", a.ID, a.Name, a.Balance, a.Type)
}
