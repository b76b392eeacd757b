package invoicing

import (
	"time"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the lifecycle state of an invoice
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// IsValid reports whether the status is one of the known states
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusSent, InvoiceStatusPaid, InvoiceStatusCancelled:
		return true
	default:
		return false
	}
}

// Invoice is the aggregate root of the invoicing context. It owns an
// insertion-ordered set of line items; items never exist without a
// parent invoice and are removed together with it.
type Invoice struct {
	shared.BaseEntity
	Number         string
	CompanyID      uuid.UUID
	CustomerID     uuid.UUID
	DateCreated    time.Time // issue date, set once at creation
	DateDue        time.Time
	Status         InvoiceStatus
	Notes          string
	DiscountAmount decimal.Decimal
	ShippingAmount decimal.Decimal
	Items          []InvoiceItem

	// Company and Customer are populated when the aggregate is
	// loaded with its associations; they are nil otherwise.
	Company  *Company
	Customer *Customer
}

// InvoiceItem is one billable entry on an invoice.
type InvoiceItem struct {
	shared.BaseEntity
	InvoiceID   uuid.UUID
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Position    int
}

// LineTotal returns quantity × unit price as an exact decimal.
func (it InvoiceItem) LineTotal() decimal.Decimal {
	return decimal.NewFromInt(int64(it.Quantity)).Mul(it.UnitPrice)
}

// InvoiceTotals holds the derived monetary values of an invoice.
// They are recomputed on demand and never stored.
type InvoiceTotals struct {
	Subtotal decimal.Decimal
	Discount decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// NewInvoice creates a new draft invoice. The issue date is fixed at
// creation time and never changes afterwards.
func NewInvoice(number string, companyID, customerID uuid.UUID, dateDue time.Time) (*Invoice, error) {
	if err := validateInvoiceNumber(number); err != nil {
		return nil, err
	}
	if companyID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_COMPANY", "Invoice requires a company")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Invoice requires a customer")
	}
	if dateDue.IsZero() {
		return nil, shared.NewDomainError("INVALID_DUE_DATE", "Invoice requires a due date")
	}

	return &Invoice{
		BaseEntity:     shared.NewBaseEntity(),
		Number:         number,
		CompanyID:      companyID,
		CustomerID:     customerID,
		DateCreated:    truncateToDay(time.Now()),
		DateDue:        truncateToDay(dateDue),
		Status:         InvoiceStatusDraft,
		Notes:          "",
		DiscountAmount: decimal.Zero,
		ShippingAmount: decimal.Zero,
	}, nil
}

// NewInvoiceItem creates a validated line item. Quantity must be at
// least 1 and the unit price strictly positive.
func NewInvoiceItem(description string, quantity int, unitPrice decimal.Decimal) (InvoiceItem, error) {
	if description == "" {
		return InvoiceItem{}, shared.NewDomainError("INVALID_DESCRIPTION", "Item description cannot be empty")
	}
	if len(description) > 200 {
		return InvoiceItem{}, shared.NewDomainError("INVALID_DESCRIPTION", "Item description cannot exceed 200 characters")
	}
	if quantity < 1 {
		return InvoiceItem{}, shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be at least 1")
	}
	if !unitPrice.IsPositive() {
		return InvoiceItem{}, shared.NewDomainError("INVALID_UNIT_PRICE", "Item unit price must be greater than zero")
	}

	return InvoiceItem{
		BaseEntity:  shared.NewBaseEntity(),
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice.Round(2),
	}, nil
}

// SetStatus changes the invoice status
func (inv *Invoice) SetStatus(status InvoiceStatus) error {
	if !status.IsValid() {
		return shared.NewDomainError("INVALID_STATUS", "Invoice status must be one of draft, sent, paid, cancelled")
	}
	inv.Status = status
	inv.Touch()
	return nil
}

// SetParties reassigns the issuing company and the billed customer
func (inv *Invoice) SetParties(companyID, customerID uuid.UUID) error {
	if companyID == uuid.Nil {
		return shared.NewDomainError("INVALID_COMPANY", "Invoice requires a company")
	}
	if customerID == uuid.Nil {
		return shared.NewDomainError("INVALID_CUSTOMER", "Invoice requires a customer")
	}
	inv.CompanyID = companyID
	inv.CustomerID = customerID
	inv.Touch()
	return nil
}

// SetDueDate changes the due date
func (inv *Invoice) SetDueDate(dateDue time.Time) error {
	if dateDue.IsZero() {
		return shared.NewDomainError("INVALID_DUE_DATE", "Invoice requires a due date")
	}
	inv.DateDue = truncateToDay(dateDue)
	inv.Touch()
	return nil
}

// SetNotes sets the free-text notes
func (inv *Invoice) SetNotes(notes string) {
	inv.Notes = notes
	inv.Touch()
}

// SetAmounts sets the discount and shipping amounts. Both must be
// non-negative; they default to zero.
func (inv *Invoice) SetAmounts(discount, shipping decimal.Decimal) error {
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount amount cannot be negative")
	}
	if shipping.IsNegative() {
		return shared.NewDomainError("INVALID_SHIPPING", "Shipping amount cannot be negative")
	}
	inv.DiscountAmount = discount.Round(2)
	inv.ShippingAmount = shipping.Round(2)
	inv.Touch()
	return nil
}

// AddItem appends a line item, preserving insertion order
func (inv *Invoice) AddItem(item InvoiceItem) {
	item.InvoiceID = inv.ID
	item.Position = len(inv.Items)
	inv.Items = append(inv.Items, item)
	inv.Touch()
}

// ReplaceItems swaps the whole item set, renumbering positions in the
// order given. Used when an invoice is edited together with its items.
func (inv *Invoice) ReplaceItems(items []InvoiceItem) {
	inv.Items = make([]InvoiceItem, 0, len(items))
	for _, item := range items {
		item.InvoiceID = inv.ID
		item.Position = len(inv.Items)
		inv.Items = append(inv.Items, item)
	}
	inv.Touch()
}

// Totals derives subtotal, discount, shipping and grand total from the
// current item set. The computation is pure: calling it twice with
// unchanged inputs yields identical results. The grand total is NOT
// floored at zero; a discount larger than subtotal plus shipping
// produces a negative total which callers display as-is.
func (inv *Invoice) Totals() InvoiceTotals {
	subtotal := decimal.Zero
	for _, item := range inv.Items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	return InvoiceTotals{
		Subtotal: subtotal,
		Discount: inv.DiscountAmount,
		Shipping: inv.ShippingAmount,
		Total:    subtotal.Sub(inv.DiscountAmount).Add(inv.ShippingAmount),
	}
}

func validateInvoiceNumber(number string) error {
	if number == "" {
		return shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot be empty")
	}
	if len(number) > 50 {
		return shared.NewDomainError("INVALID_NUMBER", "Invoice number cannot exceed 50 characters")
	}
	return nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
