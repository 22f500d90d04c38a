package pricing_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/Ibrahimrosli95/invoicing-system-sub003/money"
	"github.com/Ibrahimrosli95/invoicing-system-sub003/pricing"
)

func TestEffectiveAmountComputed(t *testing.T) {
	t.Parallel()

	it, err := pricing.NewLineItem("Consulting", decimal.NewFromInt(2), money.FromCents(5000))
	require.NoError(t, err)
	require.Equal(t, money.FromCents(10000), it.EffectiveAmount())
	require.False(t, it.Overridden())
}

func TestOverrideLifecycle(t *testing.T) {
	t.Parallel()

	it, err := pricing.NewLineItem("Parts", decimal.NewFromInt(1), money.FromCents(2500))
	require.NoError(t, err)

	require.ErrorIs(t, it.SetOverride(money.FromCents(-100)), money.ErrInvalidAmount)
	require.False(t, it.Overridden())

	require.NoError(t, it.SetOverride(money.FromCents(2000)))
	require.True(t, it.Overridden())
	require.Equal(t, money.FromCents(2000), it.EffectiveAmount())

	// Editing quantity or price through the normal path keeps the manual
	// amount until it is explicitly cleared.
	it.SetQuantity(decimal.NewFromInt(10))
	require.NoError(t, it.SetUnitPrice(money.FromCents(9900)))
	require.Equal(t, money.FromCents(2000), it.EffectiveAmount())

	it.ClearOverride()
	require.False(t, it.Overridden())
	require.Equal(t, money.FromCents(99000), it.EffectiveAmount())
}

func TestNegativeInputs(t *testing.T) {
	t.Parallel()

	_, err := pricing.NewLineItem("Bad", decimal.NewFromInt(1), money.FromCents(-1))
	require.ErrorIs(t, err, money.ErrInvalidAmount)

	it, err := pricing.NewLineItem("Qty", decimal.NewFromInt(-3), money.FromCents(100))
	require.NoError(t, err)
	require.True(t, it.Quantity().IsZero())
	require.ErrorIs(t, it.SetUnitPrice(money.FromCents(-5)), money.ErrInvalidAmount)
}

func TestSubtotalOrderIndependent(t *testing.T) {
	t.Parallel()

	a, _ := pricing.NewLineItem("A", decimal.NewFromInt(2), money.FromCents(5000))
	b, _ := pricing.NewLineItem("B", decimal.NewFromFloat(1.5), money.FromCents(3333))
	c, _ := pricing.NewLineItem("C", decimal.NewFromInt(1), money.FromCents(25))

	forward := pricing.Subtotal([]pricing.LineItem{a, b, c})
	reversed := pricing.Subtotal([]pricing.LineItem{c, b, a})
	require.Equal(t, forward, reversed)
}

func TestSectionSubtotals(t *testing.T) {
	t.Parallel()

	labour, _ := pricing.NewLineItem("Labour", decimal.NewFromInt(3), money.FromCents(8000))
	parts, _ := pricing.NewLineItem("Parts", decimal.NewFromInt(1), money.FromCents(4550))
	callout, _ := pricing.NewLineItem("Callout", decimal.NewFromInt(1), money.FromCents(5000))

	sections := []pricing.Section{
		{Name: "Service", Items: []pricing.LineItem{labour, parts}},
		{Name: "Travel", Items: []pricing.LineItem{callout}},
	}
	require.Equal(t, money.FromCents(28550), sections[0].Subtotal())
	require.Equal(t, money.FromCents(33550), pricing.SectionsSubtotal(sections))
}
