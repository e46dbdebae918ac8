package utils

import (
	"testing"

	"github.com/hance08/bankbook/internal/constants"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseToCents(t *testing.T) {
	tests := []struct {
		input   string
		want    int64
		wantErr bool
	}{
		{input: "150", want: 15000},
		{input: "150.5", want: 15050},
		{input: "150.50", want: 15050},
		{input: "0.01", want: 1},
		{input: " 40 ", want: 4000},
		{input: "-12.30", want: -1230},
		{input: "", wantErr: true},
		{input: "abc", wantErr: true},
		{input: "1.2.3", wantErr: true},
		{input: "1.234", wantErr: true},
		{input: "1e30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseToCents(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatFromCents(t *testing.T) {
	assert.Equal(t, "0.00", FormatFromCents(0))
	assert.Equal(t, "150.50", FormatFromCents(15050))
	assert.Equal(t, "-0.05", FormatFromCents(-5))
	assert.Equal(t, "60.00 USD", FormatWithCurrency(6000, "USD"))
	assert.Equal(t, "60.00", FormatWithCurrency(6000, ""))
	assert.Equal(t, "18446744073709551.00 USD",
		FormatDecimalWithCurrency(constants.MaxSafeBalance.Mul(decimal.NewFromInt(2)).Add(decimal.NewFromInt(1)), "USD"))
}

func TestDecimalToCents_Rounds(t *testing.T) {
	got, err := DecimalToCents(decimal.RequireFromString("10.005"))
	require.NoError(t, err)
	assert.Equal(t, int64(1001), got)

	got, err = DecimalToCents(decimal.RequireFromString("-10.005"))
	require.NoError(t, err)
	assert.Equal(t, int64(-1001), got)
}

func TestDecimalToCents_Limit(t *testing.T) {
	got, err := DecimalToCents(constants.MaxSafeBalance)
	require.NoError(t, err)
	assert.Equal(t, constants.MaxBalanceCents, got)

	got, err = DecimalToCents(constants.MaxSafeBalance.Neg())
	require.NoError(t, err)
	assert.Equal(t, -constants.MaxBalanceCents, got)

	_, err = DecimalToCents(constants.MaxSafeBalance.Add(decimal.New(1, -2)))
	assert.Error(t, err)
}
