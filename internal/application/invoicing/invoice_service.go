package invoicing

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invoicing/backend/internal/domain/invoicing"
	"github.com/invoicing/backend/internal/domain/shared"
)

// InvoiceService handles invoice business operations
type InvoiceService struct {
	invoiceRepo  invoicing.InvoiceRepository
	companyRepo  invoicing.CompanyRepository
	customerRepo invoicing.CustomerRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(
	invoiceRepo invoicing.InvoiceRepository,
	companyRepo invoicing.CompanyRepository,
	customerRepo invoicing.CustomerRepository,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:  invoiceRepo,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
	}
}

// Create creates a new invoice together with its line items
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	exists, err := s.invoiceRepo.ExistsByNumber(ctx, req.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Invoice with this number already exists")
	}

	if err := s.checkParties(ctx, req.CompanyID, req.CustomerID); err != nil {
		return nil, err
	}

	dateDue, err := parseDate(req.DateDue)
	if err != nil {
		return nil, err
	}

	invoice, err := invoicing.NewInvoice(req.Number, req.CompanyID, req.CustomerID, dateDue)
	if err != nil {
		return nil, err
	}

	if req.Status != "" {
		if err := invoice.SetStatus(invoicing.InvoiceStatus(req.Status)); err != nil {
			return nil, err
		}
	}
	if req.Notes != "" {
		invoice.SetNotes(req.Notes)
	}
	if err := invoice.SetAmounts(amountOrZero(req.DiscountAmount), amountOrZero(req.ShippingAmount)); err != nil {
		return nil, err
	}

	items, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}
	invoice.ReplaceItems(items)

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, invoice.ID)
}

// GetByID retrieves an invoice with its items and parties
func (s *InvoiceService) GetByID(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToInvoiceResponse(invoice), nil
}

// List retrieves invoices matching the filter, most recently issued
// first. The search token matches the invoice number or the customer
// name case-insensitively; search and status compose with AND.
func (s *InvoiceService) List(ctx context.Context, filter InvoiceListFilter) ([]InvoiceListResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.Search = filter.Search
	if filter.Status != "" {
		domainFilter.Filters["status"] = filter.Status
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	invoices, err := s.invoiceRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.invoiceRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]InvoiceListResponse, len(invoices))
	for i, invoice := range invoices {
		responses[i] = ToInvoiceListResponse(&invoice)
	}

	return responses, total, nil
}

// Update updates an invoice and replaces its item set. The invoice
// number and issue date are immutable.
func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	invoice, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.checkParties(ctx, req.CompanyID, req.CustomerID); err != nil {
		return nil, err
	}
	if err := invoice.SetParties(req.CompanyID, req.CustomerID); err != nil {
		return nil, err
	}

	dateDue, err := parseDate(req.DateDue)
	if err != nil {
		return nil, err
	}
	if err := invoice.SetDueDate(dateDue); err != nil {
		return nil, err
	}

	if err := invoice.SetStatus(invoicing.InvoiceStatus(req.Status)); err != nil {
		return nil, err
	}
	invoice.SetNotes(req.Notes)

	if err := invoice.SetAmounts(amountOrZero(req.DiscountAmount), amountOrZero(req.ShippingAmount)); err != nil {
		return nil, err
	}

	items, err := buildItems(req.Items)
	if err != nil {
		return nil, err
	}
	invoice.ReplaceItems(items)

	if err := s.invoiceRepo.Save(ctx, invoice); err != nil {
		return nil, err
	}

	return s.GetByID(ctx, invoice.ID)
}

// Delete deletes an invoice together with its items
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.invoiceRepo.FindByID(ctx, id); err != nil {
		return err
	}

	return s.invoiceRepo.Delete(ctx, id)
}

// checkParties verifies both referenced parties exist before an invoice
// is written.
func (s *InvoiceService) checkParties(ctx context.Context, companyID, customerID uuid.UUID) error {
	if _, err := s.companyRepo.FindByID(ctx, companyID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_COMPANY", "Company not found")
		}
		return err
	}
	if _, err := s.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("INVALID_CUSTOMER", "Customer not found")
		}
		return err
	}
	return nil
}

func buildItems(reqs []InvoiceItemRequest) ([]invoicing.InvoiceItem, error) {
	items := make([]invoicing.InvoiceItem, 0, len(reqs))
	for _, r := range reqs {
		item, err := invoicing.NewInvoiceItem(r.Description, r.Quantity, r.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func amountOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date must use the YYYY-MM-DD format")
	}
	return t, nil
}
