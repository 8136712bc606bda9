package entities

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount reads a user-typed monetary value.
//
// An empty field means zero (the forms leave optional amounts blank). Anything
// that is not a decimal number, or is negative, is rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, nil
	}
	// Shop staff type "12,50" as often as "12.50".
	if strings.Count(raw, ",") == 1 && !strings.Contains(raw, ".") {
		raw = strings.Replace(raw, ",", ".", 1)
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatMoney renders an amount with exactly two decimal places, e.g. "R$ 5.00".
func FormatMoney(prefix string, d decimal.Decimal) string {
	if prefix == "" {
		return d.StringFixed(2)
	}
	return prefix + " " + d.StringFixed(2)
}
