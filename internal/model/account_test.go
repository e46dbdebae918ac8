package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		input   string
		want    AccountType
		wantErr bool
	}{
		{input: "checking", want: Checking},
		{input: "Checking", want: Checking},
		{input: "  SAVINGS ", want: Savings},
		{input: "savings", want: Savings},
		{input: "", wantErr: true},
		{input: "chequing", wantErr: true},
		{input: "credit", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAccountType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAccountTypeFromRecord_DefaultsToSavings(t *testing.T) {
	assert.Equal(t, Checking, AccountTypeFromRecord("checking"))
	assert.Equal(t, Savings, AccountTypeFromRecord("savings"))
	assert.Equal(t, Savings, AccountTypeFromRecord("Checking"))
	assert.Equal(t, Savings, AccountTypeFromRecord("chekcing"))
	assert.Equal(t, Savings, AccountTypeFromRecord(""))
}

func TestNewAccount_ZeroBalance(t *testing.T) {
	acc := NewAccount("12345678", "", Checking)

	assert.Equal(t, "12345678", acc.ID)
	assert.Equal(t, "", acc.Name)
	assert.Equal(t, Checking, acc.Type)
	assert.Zero(t, acc.Balance)
}

func TestAccount_RecordRoundTrip(t *testing.T) {
	acc := NewAccount("87654321", "Bob", Savings)
	acc.Balance = -1250

	rec := acc.ToRecord()
	assert.Equal(t, Record{Name: "Bob", Type: "savings", Balance: -1250}, rec)

	back := AccountFromRecord(acc.ID, rec)
	assert.Equal(t, acc, back)
}

func TestAccount_CloneIsIndependent(t *testing.T) {
	acc := NewAccount("11112222", "Alice", Checking)
	cp := acc.Clone()
	cp.Balance = 500
	cp.Name = "Mallory"

	assert.Zero(t, acc.Balance)
	assert.Equal(t, "Alice", acc.Name)
}
