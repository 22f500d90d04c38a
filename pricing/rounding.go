package pricing

import (
	"errors"

	"github.com/Ibrahimrosli95/invoicing-system-sub003/money"
)

// ErrInvalidPrecision is returned when a rounding precision outside the
// supported currency increments is supplied.
var ErrInvalidPrecision = errors.New("pricing: unsupported rounding precision")

// Precisions lists the supported rounding increments in minor units:
// 1.00, 0.50, 0.10, 0.05 and 0.01.
var Precisions = []money.Money{100, 50, 10, 5, 1}

// RoundingPolicy optionally aligns the final total to a currency increment.
type RoundingPolicy struct {
	Enabled   bool
	Method    money.RoundMethod
	Precision money.Money
}

// SetPrecision validates the increment against the supported set.
func (p *RoundingPolicy) SetPrecision(precision money.Money) error {
	for _, allowed := range Precisions {
		if precision == allowed {
			p.Precision = precision
			return nil
		}
	}
	return ErrInvalidPrecision
}

// Evaluate returns the rounded total and the signed adjustment applied to
// reach it. When the policy is disabled the total passes through and the
// adjustment is zero.
func (p RoundingPolicy) Evaluate(preRoundTotal money.Money) (money.Money, money.Money) {
	if !p.Enabled || p.Precision <= 0 {
		return preRoundTotal, 0
	}
	rounded := preRoundTotal.Round(p.Precision, p.Method)
	return rounded, rounded.Sub(preRoundTotal)
}
