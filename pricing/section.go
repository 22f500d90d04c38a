package pricing

import "github.com/Ibrahimrosli95/invoicing-system-sub003/money"

// Section groups line items under a heading on service invoices. Order is
// display order only and never changes the totals.
type Section struct {
	Name        string
	Description string
	Items       []LineItem
}

// Subtotal sums the effective amounts of the section's items.
func (s *Section) Subtotal() money.Money {
	return Subtotal(s.Items)
}

// SectionsSubtotal sums section subtotals across a whole invoice.
func SectionsSubtotal(sections []Section) money.Money {
	var total money.Money
	for i := range sections {
		total = total.Add(sections[i].Subtotal())
	}
	return total
}
