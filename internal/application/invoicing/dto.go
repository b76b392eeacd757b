package invoicing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoicing/backend/internal/domain/invoicing"
)

// DateLayout is the wire format for day-granular invoice dates.
const DateLayout = "2006-01-02"

// CreateCompanyRequest represents a request to create a new company
type CreateCompanyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Email   string `json:"email" binding:"required,email,max=254"`
}

// UpdateCompanyRequest represents a request to update a company
type UpdateCompanyRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Address string `json:"address" binding:"required"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Email   string `json:"email" binding:"required,email,max=254"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Address string `json:"address" binding:"required"`
}

// UpdateCustomerRequest represents a request to update a customer
type UpdateCustomerRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=200"`
	Email   string `json:"email" binding:"required,email,max=254"`
	Phone   string `json:"phone" binding:"required,max=20"`
	Address string `json:"address" binding:"required"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PartyListFilter represents filter options for company and customer lists
type PartyListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// InvoiceItemRequest represents one line of an invoice in a write request
type InvoiceItemRequest struct {
	Description string          `json:"description" binding:"required,min=1,max=200"`
	Quantity    int             `json:"quantity" binding:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price" binding:"required"`
}

// CreateInvoiceRequest represents a request to create a new invoice
type CreateInvoiceRequest struct {
	Number         string               `json:"number" binding:"required,min=1,max=50"`
	CompanyID      uuid.UUID            `json:"company_id" binding:"required"`
	CustomerID     uuid.UUID            `json:"customer_id" binding:"required"`
	DateDue        string               `json:"date_due" binding:"required"`
	Status         string               `json:"status" binding:"omitempty,oneof=draft sent paid cancelled"`
	Notes          string               `json:"notes" binding:"max=2000"`
	DiscountAmount *decimal.Decimal     `json:"discount_amount"`
	ShippingAmount *decimal.Decimal     `json:"shipping_amount"`
	Items          []InvoiceItemRequest `json:"items" binding:"omitempty,dive"`
}

// UpdateInvoiceRequest represents a request to update an invoice.
// The item list replaces the stored one wholesale; the issue date and
// invoice number never change after creation.
type UpdateInvoiceRequest struct {
	CompanyID      uuid.UUID            `json:"company_id" binding:"required"`
	CustomerID     uuid.UUID            `json:"customer_id" binding:"required"`
	DateDue        string               `json:"date_due" binding:"required"`
	Status         string               `json:"status" binding:"required,oneof=draft sent paid cancelled"`
	Notes          string               `json:"notes" binding:"max=2000"`
	DiscountAmount *decimal.Decimal     `json:"discount_amount"`
	ShippingAmount *decimal.Decimal     `json:"shipping_amount"`
	Items          []InvoiceItemRequest `json:"items" binding:"omitempty,dive"`
}

// InvoiceItemResponse represents one invoice line in API responses
type InvoiceItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

// InvoiceResponse represents a full invoice in API responses
type InvoiceResponse struct {
	ID             uuid.UUID             `json:"id"`
	Number         string                `json:"number"`
	CompanyID      uuid.UUID             `json:"company_id"`
	CustomerID     uuid.UUID             `json:"customer_id"`
	Company        *CompanyResponse      `json:"company,omitempty"`
	Customer       *CustomerResponse     `json:"customer,omitempty"`
	DateCreated    string                `json:"date_created"`
	DateDue        string                `json:"date_due"`
	Status         string                `json:"status"`
	Notes          string                `json:"notes"`
	Items          []InvoiceItemResponse `json:"items"`
	Subtotal       decimal.Decimal       `json:"subtotal"`
	DiscountAmount decimal.Decimal       `json:"discount_amount"`
	ShippingAmount decimal.Decimal       `json:"shipping_amount"`
	Total          decimal.Decimal       `json:"total"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
}

// InvoiceListResponse represents an invoice row in list responses
type InvoiceListResponse struct {
	ID           uuid.UUID       `json:"id"`
	Number       string          `json:"number"`
	CustomerName string          `json:"customer_name"`
	DateCreated  string          `json:"date_created"`
	DateDue      string          `json:"date_due"`
	Status       string          `json:"status"`
	Total        decimal.Decimal `json:"total"`
}

// InvoiceListFilter represents filter options for the invoice list
type InvoiceListFilter struct {
	Search   string `form:"search"`
	Status   string `form:"status" binding:"omitempty,oneof=draft sent paid cancelled"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
}

// ToCompanyResponse converts a domain Company to CompanyResponse
func ToCompanyResponse(c *invoicing.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:        c.ID,
		Name:      c.Name,
		Address:   c.Address,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToCustomerResponse converts a domain Customer to CustomerResponse
func ToCustomerResponse(c *invoicing.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// ToInvoiceResponse converts a domain Invoice to InvoiceResponse,
// computing the monetary totals from the current item set.
func ToInvoiceResponse(inv *invoicing.Invoice) *InvoiceResponse {
	totals := inv.Totals()

	items := make([]InvoiceItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = InvoiceItemResponse{
			ID:          item.ID,
			Description: item.Description,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal(),
		}
	}

	resp := &InvoiceResponse{
		ID:             inv.ID,
		Number:         inv.Number,
		CompanyID:      inv.CompanyID,
		CustomerID:     inv.CustomerID,
		DateCreated:    inv.DateCreated.Format(DateLayout),
		DateDue:        inv.DateDue.Format(DateLayout),
		Status:         string(inv.Status),
		Notes:          inv.Notes,
		Items:          items,
		Subtotal:       totals.Subtotal,
		DiscountAmount: totals.Discount,
		ShippingAmount: totals.Shipping,
		Total:          totals.Total,
		CreatedAt:      inv.CreatedAt,
		UpdatedAt:      inv.UpdatedAt,
	}

	if inv.Company != nil {
		resp.Company = ToCompanyResponse(inv.Company)
	}
	if inv.Customer != nil {
		resp.Customer = ToCustomerResponse(inv.Customer)
	}

	return resp
}

// ToInvoiceListResponse converts a domain Invoice to InvoiceListResponse
func ToInvoiceListResponse(inv *invoicing.Invoice) InvoiceListResponse {
	customerName := ""
	if inv.Customer != nil {
		customerName = inv.Customer.Name
	}

	return InvoiceListResponse{
		ID:           inv.ID,
		Number:       inv.Number,
		CustomerName: customerName,
		DateCreated:  inv.DateCreated.Format(DateLayout),
		DateDue:      inv.DateDue.Format(DateLayout),
		Status:       string(inv.Status),
		Total:        inv.Totals().Total,
	}
}
