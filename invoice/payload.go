package invoice

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Ibrahimrosli95/invoicing-system-sub003/dates"
	"github.com/Ibrahimrosli95/invoicing-system-sub003/money"
	"github.com/Ibrahimrosli95/invoicing-system-sub003/pricing"
)

// ItemPayload is one line of the save payload.
type ItemPayload struct {
	ItemID      string      `json:"itemId,omitempty" validate:"omitempty,uuid"`
	SourceID    string      `json:"sourceId,omitempty" validate:"omitempty,uuid"`
	Description string      `json:"description" validate:"required"`
	Quantity    string      `json:"quantity" validate:"required"`
	UnitPrice   money.Money `json:"unitPrice" validate:"gte=0"`
	Amount      money.Money `json:"amount" validate:"gte=0"`
	Overridden  bool        `json:"overridden"`
}

// SavePayload is the plain data handed to the host's persistence API at
// save time. Dates are in canonical ISO form; amounts carry two fraction
// digits on the wire.
type SavePayload struct {
	CustomerID   string `json:"customerId" validate:"required,uuid"`
	CustomerName string `json:"customerName,omitempty"`
	IssueDate    string `json:"issueDate" validate:"required,datetime=2006-01-02"`
	DueDate      string `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Currency     string `json:"currency,omitempty"`

	Items []ItemPayload `json:"items" validate:"required,min=1,dive"`

	DiscountType    pricing.DiscountType `json:"discountType,omitempty" validate:"omitempty,oneof=percentage fixed"`
	DiscountPercent string               `json:"discountPercent"`
	DiscountAmount  money.Money          `json:"discountAmount"`
	TaxPreset       pricing.TaxPreset    `json:"taxPreset,omitempty" validate:"omitempty,oneof=SST GST VAT CUSTOM"`
	TaxPercent      string               `json:"taxPercent"`
	TaxAmount       money.Money          `json:"taxAmount"`

	Subtotal           money.Money `json:"subtotal"`
	RoundingAdjustment money.Money `json:"roundingAdjustment"`
	Total              money.Money `json:"total"`
	Paid               money.Money `json:"paidAmount"`
	BalanceDue         money.Money `json:"balanceDue"`

	Notes string `json:"notes,omitempty"`
	Terms string `json:"terms,omitempty"`
}

// BuildPayload assembles the save payload from an invoice and its computed
// totals. It performs no validation; call Validate before submitting.
func BuildPayload(inv *Invoice) SavePayload {
	totals := inv.Totals()

	items := inv.allItems()
	rows := make([]ItemPayload, 0, len(items))
	for i := range items {
		it := &items[i]
		rows = append(rows, ItemPayload{
			ItemID:      it.ItemID,
			SourceID:    it.SourceID,
			Description: it.Description,
			Quantity:    it.Quantity().String(),
			UnitPrice:   it.UnitPrice(),
			Amount:      it.EffectiveAmount(),
			Overridden:  it.Overridden(),
		})
	}

	customerID := ""
	if inv.CustomerID != uuid.Nil {
		customerID = inv.CustomerID.String()
	}
	dueDate := ""
	if !inv.DueDate.IsZero() {
		dueDate = dates.FormatISO(inv.DueDate)
	}

	return SavePayload{
		CustomerID:         customerID,
		CustomerName:       inv.CustomerName,
		IssueDate:          dates.FormatISO(inv.IssueDate),
		DueDate:            dueDate,
		Currency:           inv.CurrencySymbol,
		Items:              rows,
		DiscountType:       inv.Discount.Type,
		DiscountPercent:    inv.Discount.DisplayPercentage(totals.Subtotal).String(),
		DiscountAmount:     totals.DiscountAmount,
		TaxPreset:          inv.Tax.Preset,
		TaxPercent:         inv.Tax.Percentage.String(),
		TaxAmount:          totals.TaxAmount,
		Subtotal:           totals.Subtotal,
		RoundingAdjustment: totals.RoundingAdjustment,
		Total:              totals.Total,
		Paid:               totals.Paid,
		BalanceDue:         totals.BalanceDue,
	}
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// Validator returns the shared validator instance with the display-date
// rule registered, for hosts that validate form structs of their own.
func Validator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		if err := dates.RegisterRule(validate); err != nil {
			panic(fmt.Sprintf("invoice: register date rule: %v", err))
		}
	})
	return validate
}

// Validate checks the payload is structurally fit for submission. Business
// rules beyond shape (credit limits, duplicate numbers) belong to the host.
func (p SavePayload) Validate() error {
	if err := Validator().Struct(p); err != nil {
		return fmt.Errorf("invoice: invalid payload: %w", err)
	}
	for i, row := range p.Items {
		if money.QuantityOrZero(row.Quantity).IsNegative() {
			return fmt.Errorf("invoice: invalid payload: item %d has negative quantity", i)
		}
	}
	return nil
}

// QuantityDecimal parses an item row's quantity back to a decimal,
// absorbing non-numeric input as zero.
func (p ItemPayload) QuantityDecimal() decimal.Decimal {
	return money.QuantityOrZero(p.Quantity)
}
