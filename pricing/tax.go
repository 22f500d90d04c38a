package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Ibrahimrosli95/invoicing-system-sub003/money"
)

// TaxPreset names a tax scheme with a fixed statutory rate, or Custom for a
// user-supplied one.
type TaxPreset string

const (
	// TaxSST is Malaysian sales and service tax at 6%.
	TaxSST TaxPreset = "SST"
	// TaxGST is goods and services tax at 10%.
	TaxGST TaxPreset = "GST"
	// TaxVAT is value added tax at 5%.
	TaxVAT TaxPreset = "VAT"
	// TaxCustom leaves the rate to the caller.
	TaxCustom TaxPreset = "CUSTOM"
)

var presetRates = map[TaxPreset]decimal.Decimal{
	TaxSST: decimal.NewFromInt(6),
	TaxGST: decimal.NewFromInt(10),
	TaxVAT: decimal.NewFromInt(5),
}

// TaxPolicy applies a percentage to the post-discount subtotal. The rate
// equals the preset's statutory rate unless the preset is Custom.
type TaxPolicy struct {
	Preset     TaxPreset
	Percentage decimal.Decimal
}

// NewTaxPolicy builds a policy for the given preset. Unknown presets behave
// as Custom with a zero rate.
func NewTaxPolicy(preset TaxPreset) TaxPolicy {
	p := TaxPolicy{Preset: preset}
	if rate, ok := presetRates[preset]; ok {
		p.Percentage = rate
	}
	return p
}

// SetPreset switches presets, resetting the rate to the preset's statutory
// value. Switching to Custom keeps the current rate as the starting point.
func (p *TaxPolicy) SetPreset(preset TaxPreset) {
	p.Preset = preset
	if rate, ok := presetRates[preset]; ok {
		p.Percentage = rate
	}
}

// SetCustomRate switches to a user-supplied rate. Negative rates are
// rejected; no upper bound is enforced here (the form layer may impose one).
func (p *TaxPolicy) SetCustomRate(pct decimal.Decimal) error {
	if pct.IsNegative() {
		return money.ErrInvalidAmount
	}
	p.Preset = TaxCustom
	p.Percentage = pct
	return nil
}

// Evaluate returns the tax on the given base. The base must already have the
// discount applied; tax is never computed on the raw subtotal.
func (p TaxPolicy) Evaluate(postDiscountSubtotal money.Money) money.Money {
	return postDiscountSubtotal.PercentOf(p.Percentage)
}
