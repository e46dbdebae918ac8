package utils

import (
	"fmt"
	"strings"

	"github.com/hance08/bankbook/internal/constants"
	"github.com/shopspring/decimal"
)

// FormatFromCents renders minor units as a major-unit string, e.g. 15050 -> "150.50".
func FormatFromCents(cents int64) string {
	return CentsToDecimal(cents).StringFixed(constants.CentsExp)
}

// FormatWithCurrency appends the currency code, e.g. "150.50 USD".
func FormatWithCurrency(cents int64, currency string) string {
	return FormatDecimalWithCurrency(CentsToDecimal(cents), currency)
}

// FormatDecimalWithCurrency renders a major-unit decimal like FormatWithCurrency.
// Sums of many balances can exceed int64 cents, so totals stay decimal.
func FormatDecimalWithCurrency(d decimal.Decimal, currency string) string {
	s := d.StringFixed(constants.CentsExp)
	if currency == "" {
		return s
	}
	return s + " " + currency
}

// ParseToCents converts a typed amount to minor units.
// e.g., "150.50" -> 15050, "150" -> 15000, "150.5" -> 15050
func ParseToCents(amountStr string) (int64, error) {
	amountStr = strings.TrimSpace(amountStr)
	if amountStr == "" {
		return 0, fmt.Errorf("amount can't be empty")
	}

	d, err := decimal.NewFromString(amountStr)
	if err != nil {
		return 0, fmt.Errorf("invalid amount: %s", amountStr)
	}

	if d.Exponent() < -constants.CentsExp {
		return 0, fmt.Errorf("invalid amount: %s (at most %d decimal places)", amountStr, constants.CentsExp)
	}

	return DecimalToCents(d)
}

// CentsToDecimal converts minor units to a major-unit decimal.
func CentsToDecimal(cents int64) decimal.Decimal {
	return decimal.New(cents, -constants.CentsExp)
}

// DecimalToCents converts a major-unit decimal to minor units, rounding
// half away from zero to the nearest cent.
func DecimalToCents(d decimal.Decimal) (int64, error) {
	if d.Abs().GreaterThan(constants.MaxSafeBalance) {
		return 0, fmt.Errorf("amount %s too large", d.String())
	}
	return d.Round(constants.CentsExp).Shift(constants.CentsExp).IntPart(), nil
}
