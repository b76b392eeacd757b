package pdf

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/invoicing/backend/internal/domain/invoicing"
)

// Party holds the printable details of a company or customer.
type Party struct {
	Name    string
	Address string
	Phone   string
	Email   string
}

// Line is one printable invoice row.
type Line struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
}

// Document is the renderer input. It is a flat snapshot of an invoice
// so renderers never reach back into the domain model.
type Document struct {
	Number    string
	IssueDate time.Time
	DueDate   time.Time
	Status    string
	Notes     string
	Company   Party
	Customer  Party
	Lines     []Line
	Subtotal  decimal.Decimal
	Discount  decimal.Decimal
	Shipping  decimal.Decimal
	Total     decimal.Decimal
}

// NewDocument builds a renderable snapshot from a fully loaded invoice
// aggregate. The invoice must carry its company and customer.
func NewDocument(inv *invoicing.Invoice) *Document {
	totals := inv.Totals()

	doc := &Document{
		Number:    inv.Number,
		IssueDate: inv.DateCreated,
		DueDate:   inv.DateDue,
		Status:    string(inv.Status),
		Notes:     inv.Notes,
		Subtotal:  totals.Subtotal,
		Discount:  totals.Discount,
		Shipping:  totals.Shipping,
		Total:     totals.Total,
	}

	if inv.Company != nil {
		doc.Company = Party{
			Name:    inv.Company.Name,
			Address: inv.Company.Address,
			Phone:   inv.Company.Phone,
			Email:   inv.Company.Email,
		}
	}
	if inv.Customer != nil {
		doc.Customer = Party{
			Name:    inv.Customer.Name,
			Address: inv.Customer.Address,
			Phone:   inv.Customer.Phone,
			Email:   inv.Customer.Email,
		}
	}

	doc.Lines = make([]Line, len(inv.Items))
	for i, item := range inv.Items {
		doc.Lines[i] = Line{
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal(),
		}
	}

	return doc
}
