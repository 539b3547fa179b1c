package utils

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const defaultPrecision = 2

// CurrencyPrecision returns the number of minor digits of an ISO 4217 code.
// Unknown codes use two digits.
// Example: USD returns 2, JPY returns 0, BHD returns 3.
func CurrencyPrecision(code string) int {
	unit, err := currency.ParseISO(strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return defaultPrecision
	}
	scale, _ := currency.Standard.Rounding(unit)
	return scale
}

// FormatWithCurrencyPrecision formats an amount with the precision of the currency.
// Example: amount 12.3456 with USD returns "12.35"
// Example: amount 12.3456 with JPY returns "12"
// Example: amount 12 with USD returns "12.00"
func FormatWithCurrencyPrecision(amount decimal.Decimal, code string) string {
	return FormatWithPrecision(amount, CurrencyPrecision(code))
}

// FormatWithPrecision formats an amount with the given precision, padding
// with zeros.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
