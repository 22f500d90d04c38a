package pricing

import "github.com/Ibrahimrosli95/invoicing-system-sub003/money"

// Input is the snapshot of form state a totals run consumes. Flat invoices
// populate Items; service invoices populate Sections; both contribute when
// both are present.
type Input struct {
	Items    []LineItem
	Sections []Section
	Discount DiscountPolicy
	Tax      TaxPolicy
	Rounding RoundingPolicy
	Paid     money.Money
}

// Totals is the full derived result of one calculation. It is never mutated
// independently; re-run Calculate after any input change.
type Totals struct {
	Subtotal           money.Money `json:"subtotal"`
	DiscountAmount     money.Money `json:"discountAmount"`
	AfterDiscount      money.Money `json:"afterDiscount"`
	TaxAmount          money.Money `json:"taxAmount"`
	RoundingAdjustment money.Money `json:"roundingAdjustment"`
	Total              money.Money `json:"total"`
	Paid               money.Money `json:"paidAmount"`
	BalanceDue         money.Money `json:"balanceDue"`
}

// Calculate runs the fixed totals pipeline: subtotal, discount, tax on the
// discounted base, rounding, balance due. It is pure and idempotent; calling
// it twice on the same input yields identical totals. Business-policy
// conditions (discount exceeding the subtotal, overpayment) are represented,
// not rejected.
func Calculate(in Input) Totals {
	subtotal := Subtotal(in.Items).Add(SectionsSubtotal(in.Sections))
	discount := in.Discount.Evaluate(subtotal)
	afterDiscount := subtotal.Sub(discount)
	tax := in.Tax.Evaluate(afterDiscount)
	preRound := afterDiscount.Add(tax)
	total, adjustment := in.Rounding.Evaluate(preRound)
	return Totals{
		Subtotal:           subtotal,
		DiscountAmount:     discount,
		AfterDiscount:      afterDiscount,
		TaxAmount:          tax,
		RoundingAdjustment: adjustment,
		Total:              total,
		Paid:               in.Paid,
		BalanceDue:         total.Sub(in.Paid),
	}
}
