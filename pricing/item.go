// Package pricing implements the invoice financial core: line items with
// manual amount overrides, discount/tax/rounding policies and the totals
// pipeline that combines them. Everything here is pure arithmetic over a
// snapshot of form state; persistence, transport and presentation are the
// host application's concern.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/Ibrahimrosli95/invoicing-system-sub003/money"
)

// LineItem is a single billable row. Its contribution to the subtotal is
// quantity times unit price unless a manual override is in effect.
type LineItem struct {
	Description string
	ItemID      string
	SourceID    string

	quantity  decimal.Decimal
	unitPrice money.Money
	override  *money.Money
}

// NewLineItem builds an item from already-parsed values. A negative unit
// price is rejected; a negative quantity is absorbed as zero the same way a
// transiently invalid form field is.
func NewLineItem(description string, qty decimal.Decimal, unitPrice money.Money) (LineItem, error) {
	if unitPrice.IsNegative() {
		return LineItem{}, money.ErrInvalidAmount
	}
	it := LineItem{Description: description, unitPrice: unitPrice}
	it.SetQuantity(qty)
	return it, nil
}

// Quantity returns the current quantity.
func (it *LineItem) Quantity() decimal.Decimal {
	return it.quantity
}

// UnitPrice returns the current unit price.
func (it *LineItem) UnitPrice() money.Money {
	return it.unitPrice
}

// SetQuantity updates the quantity through the normal edit path. A manual
// override, if present, is kept: the user asked for that amount explicitly
// and only an explicit clear discards it. Negative input is absorbed as zero.
func (it *LineItem) SetQuantity(qty decimal.Decimal) {
	if qty.IsNegative() {
		qty = decimal.Zero
	}
	it.quantity = qty
}

// SetUnitPrice updates the unit price through the normal edit path, keeping
// any manual override. Negative prices are rejected with ErrInvalidAmount.
func (it *LineItem) SetUnitPrice(price money.Money) error {
	if price.IsNegative() {
		return money.ErrInvalidAmount
	}
	it.unitPrice = price
	return nil
}

// SetOverride pins the item's effective amount, superseding quantity and
// unit price until cleared. Negative amounts are rejected.
func (it *LineItem) SetOverride(amount money.Money) error {
	if amount.IsNegative() {
		return money.ErrInvalidAmount
	}
	it.override = &amount
	return nil
}

// ClearOverride reverts the item to its computed amount.
func (it *LineItem) ClearOverride() {
	it.override = nil
}

// Overridden reports whether a manual amount is in effect.
func (it *LineItem) Overridden() bool {
	return it.override != nil
}

// OverrideAmount returns the manual amount and whether one is set.
func (it *LineItem) OverrideAmount() (money.Money, bool) {
	if it.override == nil {
		return 0, false
	}
	return *it.override, true
}

// EffectiveAmount is the item's contribution to the subtotal: the manual
// override when set, otherwise quantity times unit price.
func (it *LineItem) EffectiveAmount() money.Money {
	if it.override != nil {
		return *it.override
	}
	return it.unitPrice.Mul(it.quantity)
}

// Subtotal sums the effective amounts of a flat item list. Item order does
// not affect the result.
func Subtotal(items []LineItem) money.Money {
	var total money.Money
	for i := range items {
		total = total.Add(items[i].EffectiveAmount())
	}
	return total
}
