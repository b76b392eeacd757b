package invoicing

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoicing/backend/internal/domain/shared"
)

// CompanyRepository defines the interface for company persistence
type CompanyRepository interface {
	// FindByID finds a company by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)

	// FindAll finds all companies matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Company, error)

	// Count counts companies matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a company
	Save(ctx context.Context, company *Company) error

	// Delete deletes a company
	Delete(ctx context.Context, id uuid.UUID) error
}

// CustomerRepository defines the interface for customer persistence
type CustomerRepository interface {
	// FindByID finds a customer by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Customer, error)

	// FindAll finds all customers matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Customer, error)

	// Count counts customers matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// Save creates or updates a customer
	Save(ctx context.Context, customer *Customer) error

	// Delete deletes a customer
	Delete(ctx context.Context, id uuid.UUID) error
}

// InvoiceRepository defines the interface for invoice persistence.
// Loaded invoices always carry their items in insertion order together
// with the referenced company and customer.
type InvoiceRepository interface {
	// FindByID finds an invoice with its items, company and customer
	FindByID(ctx context.Context, id uuid.UUID) (*Invoice, error)

	// FindByNumber finds an invoice by its unique number
	FindByNumber(ctx context.Context, number string) (*Invoice, error)

	// ExistsByNumber checks if an invoice with the given number exists
	ExistsByNumber(ctx context.Context, number string) (bool, error)

	// FindAll finds invoices matching the filter. Filter.Search matches
	// invoice number or customer name; Filter.Filters["status"] narrows
	// to a single status. Results are ordered by issue date descending.
	FindAll(ctx context.Context, filter shared.Filter) ([]Invoice, error)

	// Count counts invoices matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)

	// CountByCompany counts invoices referencing a company
	CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error)

	// CountByCustomer counts invoices referencing a customer
	CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error)

	// Save creates or updates an invoice together with its full item
	// set; items absent from the aggregate are removed.
	Save(ctx context.Context, invoice *Invoice) error

	// Delete deletes an invoice and cascades to its items
	Delete(ctx context.Context, id uuid.UUID) error
}
