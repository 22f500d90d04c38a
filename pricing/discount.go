package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Ibrahimrosli95/invoicing-system-sub003/money"
)

// DiscountType selects which discount input drives the computed amount.
type DiscountType string

const (
	// DiscountPercentage applies a percentage of the subtotal.
	DiscountPercentage DiscountType = "percentage"
	// DiscountFixedAmount subtracts a flat amount.
	DiscountFixedAmount DiscountType = "fixed"
)

var oneHundred = decimal.NewFromInt(100)

// DiscountPolicy holds a percentage-of-subtotal or fixed-amount discount.
// Exactly one of the two inputs drives the computed amount; the other is a
// derived display value recomputed from the subtotal on demand.
type DiscountPolicy struct {
	Type       DiscountType
	Percentage decimal.Decimal
	Amount     money.Money
}

// ApplyPercentage switches the policy to percentage mode. The value is
// clamped to [0,100] and the fixed-amount input, now non-driving, resets to
// zero.
func (p *DiscountPolicy) ApplyPercentage(pct decimal.Decimal) {
	if pct.IsNegative() {
		pct = decimal.Zero
	}
	if pct.GreaterThan(oneHundred) {
		pct = oneHundred
	}
	p.Type = DiscountPercentage
	p.Percentage = pct
	p.Amount = 0
}

// ApplyFixedAmount switches the policy to fixed-amount mode. Negative input
// is clamped to zero and the percentage input resets.
func (p *DiscountPolicy) ApplyFixedAmount(amount money.Money) {
	if amount.IsNegative() {
		amount = 0
	}
	p.Type = DiscountFixedAmount
	p.Amount = amount
	p.Percentage = decimal.Zero
}

// Evaluate returns the discount for the given subtotal. A fixed amount is
// returned as-is even when it exceeds the subtotal; whether to clamp is the
// caller's business decision, not this policy's.
func (p DiscountPolicy) Evaluate(subtotal money.Money) money.Money {
	switch p.Type {
	case DiscountFixedAmount:
		return p.Amount
	case DiscountPercentage:
		return subtotal.PercentOf(p.Percentage)
	default:
		return 0
	}
}

// DisplayPercentage derives the percentage shown next to a fixed-amount
// discount: amount over subtotal, or zero when the subtotal is zero.
func (p DiscountPolicy) DisplayPercentage(subtotal money.Money) decimal.Decimal {
	if p.Type == DiscountPercentage {
		return p.Percentage
	}
	if subtotal == 0 {
		return decimal.Zero
	}
	return p.Amount.Decimal().Div(subtotal.Decimal()).Mul(oneHundred).Round(2)
}

// DisplayAmount derives the amount shown next to a percentage discount.
func (p DiscountPolicy) DisplayAmount(subtotal money.Money) money.Money {
	return p.Evaluate(subtotal)
}
