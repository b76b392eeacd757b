package invoicing

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/invoicing/backend/internal/domain/invoicing"
	"github.com/invoicing/backend/internal/domain/shared"
)

func newTestParties(t *testing.T) (*invoicing.Company, *invoicing.Customer) {
	t.Helper()
	company, err := invoicing.NewCompany("Acme Corp", "123 Main St", "555-0100", "billing@acme.com")
	require.NoError(t, err)
	customer, err := invoicing.NewCustomer("Jane Doe", "jane@example.com", "555-0133", "9 Elm St")
	require.NoError(t, err)
	return company, customer
}

func newStoredInvoice(t *testing.T, company *invoicing.Company, customer *invoicing.Customer) *invoicing.Invoice {
	t.Helper()
	invoice, err := invoicing.NewInvoice("INV-001", company.ID, customer.ID, time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	item, err := invoicing.NewInvoiceItem("Consulting", 10, decimal.RequireFromString("150.00"))
	require.NoError(t, err)
	invoice.AddItem(item)
	invoice.Company = company
	invoice.Customer = customer
	return invoice
}

func TestInvoiceServiceCreate(t *testing.T) {
	ctx := context.Background()
	company, customer := newTestParties(t)

	validReq := func() CreateInvoiceRequest {
		return CreateInvoiceRequest{
			Number:     "INV-001",
			CompanyID:  company.ID,
			CustomerID: customer.ID,
			DateDue:    "2026-09-30",
			Items: []InvoiceItemRequest{
				{Description: "Consulting", Quantity: 10, UnitPrice: decimal.RequireFromString("150.00")},
			},
		}
	}

	t.Run("creates invoice with items", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		companyRepo := new(MockCompanyRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewInvoiceService(invoiceRepo, companyRepo, customerRepo)

		invoiceRepo.On("ExistsByNumber", ctx, "INV-001").Return(false, nil)
		companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
		customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)
		invoiceRepo.On("Save", ctx, mock.AnythingOfType("*invoicing.Invoice")).Return(nil)
		invoiceRepo.On("FindByID", ctx, mock.AnythingOfType("uuid.UUID")).
			Return(newStoredInvoice(t, company, customer), nil)

		resp, err := service.Create(ctx, validReq())

		require.NoError(t, err)
		assert.Equal(t, "INV-001", resp.Number)
		assert.Equal(t, "1500.00", resp.Subtotal.StringFixed(2))
		assert.Equal(t, "1500.00", resp.Total.StringFixed(2))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "1500.00", resp.Items[0].LineTotal.StringFixed(2))
		invoiceRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate number", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		service := NewInvoiceService(invoiceRepo, new(MockCompanyRepository), new(MockCustomerRepository))

		invoiceRepo.On("ExistsByNumber", ctx, "INV-001").Return(true, nil)

		_, err := service.Create(ctx, validReq())

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "ALREADY_EXISTS", domainErr.Code)
		invoiceRepo.AssertNotCalled(t, "Save")
	})

	t.Run("rejects unknown company", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		companyRepo := new(MockCompanyRepository)
		service := NewInvoiceService(invoiceRepo, companyRepo, new(MockCustomerRepository))

		invoiceRepo.On("ExistsByNumber", ctx, "INV-001").Return(false, nil)
		companyRepo.On("FindByID", ctx, company.ID).Return(nil, shared.ErrNotFound)

		_, err := service.Create(ctx, validReq())

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_COMPANY", domainErr.Code)
	})

	t.Run("rejects malformed due date", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		companyRepo := new(MockCompanyRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewInvoiceService(invoiceRepo, companyRepo, customerRepo)

		invoiceRepo.On("ExistsByNumber", ctx, "INV-001").Return(false, nil)
		companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
		customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)

		req := validReq()
		req.DateDue = "30/09/2026"
		_, err := service.Create(ctx, req)

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_DATE", domainErr.Code)
	})

	t.Run("rejects invalid item", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		companyRepo := new(MockCompanyRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewInvoiceService(invoiceRepo, companyRepo, customerRepo)

		invoiceRepo.On("ExistsByNumber", ctx, "INV-001").Return(false, nil)
		companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
		customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)

		req := validReq()
		req.Items[0].UnitPrice = decimal.Zero
		_, err := service.Create(ctx, req)

		require.Error(t, err)
		invoiceRepo.AssertNotCalled(t, "Save")
	})
}

func TestInvoiceServiceUpdate(t *testing.T) {
	ctx := context.Background()
	company, customer := newTestParties(t)

	t.Run("replaces items and keeps issue date and number", func(t *testing.T) {
		invoice := newStoredInvoice(t, company, customer)
		originalIssueDate := invoice.DateCreated

		invoiceRepo := new(MockInvoiceRepository)
		companyRepo := new(MockCompanyRepository)
		customerRepo := new(MockCustomerRepository)
		service := NewInvoiceService(invoiceRepo, companyRepo, customerRepo)

		invoiceRepo.On("FindByID", ctx, invoice.ID).Return(invoice, nil)
		companyRepo.On("FindByID", ctx, company.ID).Return(company, nil)
		customerRepo.On("FindByID", ctx, customer.ID).Return(customer, nil)
		invoiceRepo.On("Save", ctx, mock.AnythingOfType("*invoicing.Invoice")).Return(nil)

		discount := decimal.RequireFromString("10.00")
		resp, err := service.Update(ctx, invoice.ID, UpdateInvoiceRequest{
			CompanyID:      company.ID,
			CustomerID:     customer.ID,
			DateDue:        "2026-10-15",
			Status:         "sent",
			DiscountAmount: &discount,
			Items: []InvoiceItemRequest{
				{Description: "Support", Quantity: 2, UnitPrice: decimal.RequireFromString("75.50")},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "INV-001", resp.Number)
		assert.Equal(t, originalIssueDate.Format(DateLayout), resp.DateCreated)
		assert.Equal(t, "sent", resp.Status)
		assert.Equal(t, "151.00", resp.Subtotal.StringFixed(2))
		assert.Equal(t, "141.00", resp.Total.StringFixed(2))
		require.Len(t, resp.Items, 1)
		assert.Equal(t, "Support", resp.Items[0].Description)
	})

	t.Run("propagates not found", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		service := NewInvoiceService(invoiceRepo, new(MockCompanyRepository), new(MockCustomerRepository))

		id := uuid.New()
		invoiceRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdateInvoiceRequest{
			CompanyID:  company.ID,
			CustomerID: customer.ID,
			DateDue:    "2026-10-15",
			Status:     "sent",
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestInvoiceServiceList(t *testing.T) {
	ctx := context.Background()
	company, customer := newTestParties(t)
	invoice := newStoredInvoice(t, company, customer)

	invoiceRepo := new(MockInvoiceRepository)
	service := NewInvoiceService(invoiceRepo, new(MockCompanyRepository), new(MockCustomerRepository))

	invoiceRepo.On("FindAll", ctx, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Search == "acme" && f.Filters["status"] == "draft" && f.OrderBy == "date_created" && f.OrderDir == "desc"
	})).Return([]invoicing.Invoice{*invoice}, nil)
	invoiceRepo.On("Count", ctx, mock.Anything).Return(int64(1), nil)

	responses, total, err := service.List(ctx, InvoiceListFilter{Search: "acme", Status: "draft"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, responses, 1)
	assert.Equal(t, "INV-001", responses[0].Number)
	assert.Equal(t, "Jane Doe", responses[0].CustomerName)
	assert.Equal(t, "1500.00", responses[0].Total.StringFixed(2))
}

func TestInvoiceServiceDelete(t *testing.T) {
	ctx := context.Background()
	company, customer := newTestParties(t)

	t.Run("deletes existing invoice", func(t *testing.T) {
		invoice := newStoredInvoice(t, company, customer)
		invoiceRepo := new(MockInvoiceRepository)
		service := NewInvoiceService(invoiceRepo, new(MockCompanyRepository), new(MockCustomerRepository))

		invoiceRepo.On("FindByID", ctx, invoice.ID).Return(invoice, nil)
		invoiceRepo.On("Delete", ctx, invoice.ID).Return(nil)

		require.NoError(t, service.Delete(ctx, invoice.ID))
		invoiceRepo.AssertExpectations(t)
	})

	t.Run("propagates not found", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		service := NewInvoiceService(invoiceRepo, new(MockCompanyRepository), new(MockCustomerRepository))

		id := uuid.New()
		invoiceRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		assert.ErrorIs(t, service.Delete(ctx, id), shared.ErrNotFound)
	})
}
