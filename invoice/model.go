// Package invoice provides the invoice snapshot model consumed by the
// pricing pipeline, aging-bucket classification for overdue reporting and
// the plain save payload handed to the host's persistence API.
package invoice

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ibrahimrosli95/invoicing-system-sub003/money"
	"github.com/Ibrahimrosli95/invoicing-system-sub003/pricing"
)

// Invoice is the editable state of one invoice as the form sees it. It is
// never persisted by this module; the host owns storage and submission.
type Invoice struct {
	CustomerID     uuid.UUID
	CustomerName   string
	IssueDate      time.Time
	DueDate        time.Time
	CurrencySymbol string

	// Items holds flat line items; Sections holds grouped items on service
	// invoices. Usually only one of the two is populated.
	Items    []pricing.LineItem
	Sections []pricing.Section

	Discount pricing.DiscountPolicy
	Tax      pricing.TaxPolicy
	Rounding pricing.RoundingPolicy

	Paid  money.Money
	Notes string
	Terms string
}

// Totals re-runs the pricing pipeline over the current snapshot.
func (inv *Invoice) Totals() pricing.Totals {
	return pricing.Calculate(pricing.Input{
		Items:    inv.Items,
		Sections: inv.Sections,
		Discount: inv.Discount,
		Tax:      inv.Tax,
		Rounding: inv.Rounding,
		Paid:     inv.Paid,
	})
}

// allItems flattens sections and flat items into a single list for payload
// assembly.
func (inv *Invoice) allItems() []pricing.LineItem {
	items := make([]pricing.LineItem, 0, len(inv.Items))
	items = append(items, inv.Items...)
	for i := range inv.Sections {
		items = append(items, inv.Sections[i].Items...)
	}
	return items
}
