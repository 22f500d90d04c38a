// Package money provides fixed-point currency arithmetic in integer minor
// units. All intermediate results are settled to whole cents; fractional
// products (quantities, percentages) round half-to-even so repeated
// operations do not drift.
package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a currency amount in minor units (cents). Negative values are
// representable: discounts and rounding adjustments can go below zero.
type Money int64

// ErrInvalidAmount is returned when a negative value is supplied where the
// domain requires a non-negative one (unit price, manual amount override).
var ErrInvalidAmount = errors.New("money: amount must not be negative")

// RoundMethod selects the direction used when aligning an amount to a
// precision increment.
type RoundMethod string

const (
	// RoundNearest rounds to the closest increment, halves away from the
	// lower increment.
	RoundNearest RoundMethod = "nearest"
	// RoundUp always rounds toward the next increment.
	RoundUp RoundMethod = "up"
	// RoundDown always rounds toward the previous increment.
	RoundDown RoundMethod = "down"
)

// FromCents wraps a raw minor-unit value.
func FromCents(v int64) Money {
	return Money(v)
}

// FromDecimal converts a decimal amount in major units to Money, rounding
// half-to-even at the cent.
func FromDecimal(d decimal.Decimal) Money {
	return Money(d.RoundBank(2).Shift(2).IntPart())
}

// FromString parses a decimal amount in major units ("120.85"). Thousands
// separators are tolerated.
func FromString(s string) (Money, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, fmt.Errorf("money: parse %q: %w", s, err)
	}
	return FromDecimal(d), nil
}

// Cents returns the raw minor-unit value.
func (m Money) Cents() int64 {
	return int64(m)
}

// Decimal returns the amount in major units as an exact decimal.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -2)
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m < 0
}

// Add returns m + o.
func (m Money) Add(o Money) Money {
	return m + o
}

// Sub returns m - o.
func (m Money) Sub(o Money) Money {
	return m - o
}

// Mul scales the amount by a decimal quantity, settling to cents with
// half-to-even rounding.
func (m Money) Mul(qty decimal.Decimal) Money {
	return FromDecimal(m.Decimal().Mul(qty))
}

// PercentOf computes m * pct / 100 settled to cents with half-to-even
// rounding.
func (m Money) PercentOf(pct decimal.Decimal) Money {
	return FromDecimal(m.Decimal().Mul(pct).Shift(-2))
}

// Round aligns the amount to the given precision increment (also in minor
// units, e.g. 5 for 0.05) using the requested method. A precision of zero or
// one cent leaves the amount unchanged for nearest/down and identity for up.
func (m Money) Round(precision Money, method RoundMethod) Money {
	p := int64(precision)
	if p <= 1 {
		return m
	}
	v := int64(m)
	quot := v / p
	rem := v % p
	if rem < 0 {
		quot--
		rem += p
	}
	if rem == 0 {
		return m
	}
	switch method {
	case RoundUp:
		return Money((quot + 1) * p)
	case RoundDown:
		return Money(quot * p)
	default:
		if rem*2 >= p {
			return Money((quot + 1) * p)
		}
		return Money(quot * p)
	}
}

// String renders the amount in major units with exactly two fraction digits.
func (m Money) String() string {
	v := int64(m)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// Format prefixes the two-decimal rendering with a currency symbol.
func (m Money) Format(symbol string) string {
	if symbol == "" {
		return m.String()
	}
	return symbol + " " + m.String()
}

// MarshalJSON emits the amount as a JSON number in major units with two
// fraction digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (m *Money) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("money: unmarshal: %w", err)
		}
	}
	parsed, err := FromString(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
