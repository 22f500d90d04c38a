package money

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// leadingNumber matches the numeric head of a free-form input such as
// "12.50 pcs" or "1,200.00". Live form fields routinely hold partial values.
var leadingNumber = regexp.MustCompile(`^-?[\d,]*\.?\d+`)

// AmountOrZero parses a raw field value as an amount in major units,
// treating anything non-numeric as zero. Mirrors how a live-editing form
// absorbs a momentarily cleared or half-typed input without failing the
// whole recalculation.
func AmountOrZero(value string) Money {
	return FromDecimal(QuantityOrZero(value))
}

// QuantityOrZero parses a raw field value as a decimal quantity, falling
// back to zero when no leading number is present.
func QuantityOrZero(value string) decimal.Decimal {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return decimal.Zero
	}
	cleaned := strings.ReplaceAll(trimmed, ",", "")
	if d, err := decimal.NewFromString(cleaned); err == nil {
		return d
	}
	match := leadingNumber.FindString(trimmed)
	if match == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(match, ",", ""))
	if err != nil {
		return decimal.Zero
	}
	return d
}
