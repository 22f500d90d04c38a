package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Ibrahimrosli95/invoicing-system-sub003/money"
	"github.com/Ibrahimrosli95/invoicing-system-sub003/pricing"
)

func TestDiscountAppliedBeforeTax(t *testing.T) {
	t.Parallel()

	item, err := pricing.NewLineItem("Widget", decimal.NewFromInt(1), money.FromCents(10000))
	require.NoError(t, err)

	var discount pricing.DiscountPolicy
	discount.ApplyPercentage(decimal.NewFromInt(10))

	totals := pricing.Calculate(pricing.Input{
		Items:    []pricing.LineItem{item},
		Discount: discount,
		Tax:      pricing.NewTaxPolicy(pricing.TaxSST),
	})

	require.Equal(t, money.FromCents(10000), totals.Subtotal)
	require.Equal(t, money.FromCents(1000), totals.DiscountAmount)
	require.Equal(t, money.FromCents(9000), totals.AfterDiscount)
	// 6% of the discounted 90.00, not 6.00 on the raw subtotal.
	require.Equal(t, money.FromCents(540), totals.TaxAmount)
	require.Equal(t, money.FromCents(9540), totals.Total)
}

func TestEndToEndScenario(t *testing.T) {
	t.Parallel()

	first, err := pricing.NewLineItem("Supply", decimal.NewFromInt(2), money.FromCents(5000))
	require.NoError(t, err)
	second, err := pricing.NewLineItem("Install", decimal.NewFromInt(1), money.FromCents(2500))
	require.NoError(t, err)
	require.NoError(t, second.SetOverride(money.FromCents(2000)))

	var discount pricing.DiscountPolicy
	discount.ApplyPercentage(decimal.NewFromInt(5))

	rounding := pricing.RoundingPolicy{Enabled: true, Method: money.RoundNearest}
	require.NoError(t, rounding.SetPrecision(money.FromCents(5)))

	totals := pricing.Calculate(pricing.Input{
		Items:    []pricing.LineItem{first, second},
		Discount: discount,
		Tax:      pricing.NewTaxPolicy(pricing.TaxSST),
		Rounding: rounding,
		Paid:     money.FromCents(5000),
	})

	require.Equal(t, money.FromCents(12000), totals.Subtotal)
	require.Equal(t, money.FromCents(600), totals.DiscountAmount)
	require.Equal(t, money.FromCents(11400), totals.AfterDiscount)
	require.Equal(t, money.FromCents(684), totals.TaxAmount)
	require.Equal(t, money.FromCents(1), totals.RoundingAdjustment)
	require.Equal(t, money.FromCents(12085), totals.Total)
	require.Equal(t, money.FromCents(7085), totals.BalanceDue)
}

func TestTotalsInvariant(t *testing.T) {
	t.Parallel()

	item, err := pricing.NewLineItem("Odd amount", decimal.NewFromInt(3), money.FromCents(3333))
	require.NoError(t, err)

	var discount pricing.DiscountPolicy
	discount.ApplyFixedAmount(money.FromCents(1234))

	rounding := pricing.RoundingPolicy{Enabled: true, Method: money.RoundUp}
	require.NoError(t, rounding.SetPrecision(money.FromCents(50)))

	totals := pricing.Calculate(pricing.Input{
		Items:    []pricing.LineItem{item},
		Discount: discount,
		Tax:      pricing.NewTaxPolicy(pricing.TaxVAT),
		Rounding: rounding,
	})

	reconstructed := totals.Subtotal.
		Sub(totals.DiscountAmount).
		Add(totals.TaxAmount).
		Add(totals.RoundingAdjustment)
	require.Equal(t, totals.Total, reconstructed)
}

func TestCalculateIsIdempotent(t *testing.T) {
	t.Parallel()

	item, err := pricing.NewLineItem("Repeat", decimal.NewFromFloat(1.5), money.FromCents(7999))
	require.NoError(t, err)

	in := pricing.Input{
		Items: []pricing.LineItem{item},
		Tax:   pricing.NewTaxPolicy(pricing.TaxGST),
	}
	require.Equal(t, pricing.Calculate(in), pricing.Calculate(in))
}

func TestOverpaymentIsRepresentable(t *testing.T) {
	t.Parallel()

	item, err := pricing.NewLineItem("Small job", decimal.NewFromInt(1), money.FromCents(5000))
	require.NoError(t, err)

	totals := pricing.Calculate(pricing.Input{
		Items: []pricing.LineItem{item},
		Paid:  money.FromCents(8000),
	})
	require.Equal(t, money.FromCents(-3000), totals.BalanceDue)
}

func TestSectionsAndItemsBothContribute(t *testing.T) {
	t.Parallel()

	flat, _ := pricing.NewLineItem("Flat", decimal.NewFromInt(1), money.FromCents(1000))
	grouped, _ := pricing.NewLineItem("Grouped", decimal.NewFromInt(2), money.FromCents(500))

	totals := pricing.Calculate(pricing.Input{
		Items:    []pricing.LineItem{flat},
		Sections: []pricing.Section{{Name: "Extras", Items: []pricing.LineItem{grouped}}},
	})
	require.Equal(t, money.FromCents(2000), totals.Subtotal)
	require.Equal(t, money.FromCents(2000), totals.Total)
}
