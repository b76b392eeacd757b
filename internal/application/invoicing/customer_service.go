package invoicing

import (
	"context"

	"github.com/google/uuid"

	"github.com/invoicing/backend/internal/domain/invoicing"
	"github.com/invoicing/backend/internal/domain/shared"
)

// CustomerService handles customer business operations
type CustomerService struct {
	customerRepo invoicing.CustomerRepository
	invoiceRepo  invoicing.InvoiceRepository
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(
	customerRepo invoicing.CustomerRepository,
	invoiceRepo invoicing.InvoiceRepository,
) *CustomerService {
	return &CustomerService{
		customerRepo: customerRepo,
		invoiceRepo:  invoiceRepo,
	}
}

// Create creates a new customer
func (s *CustomerService) Create(ctx context.Context, req CreateCustomerRequest) (*CustomerResponse, error) {
	customer, err := invoicing.NewCustomer(req.Name, req.Email, req.Phone, req.Address)
	if err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	return ToCustomerResponse(customer), nil
}

// GetByID retrieves a customer by ID
func (s *CustomerService) GetByID(ctx context.Context, id uuid.UUID) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToCustomerResponse(customer), nil
}

// List retrieves customers matching the filter
func (s *CustomerService) List(ctx context.Context, filter PartyListFilter) ([]CustomerResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.OrderBy = "name"
	domainFilter.OrderDir = "asc"
	domainFilter.Search = filter.Search
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	customers, err := s.customerRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.customerRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = *ToCustomerResponse(&customer)
	}

	return responses, total, nil
}

// Update updates an existing customer
func (s *CustomerService) Update(ctx context.Context, id uuid.UUID, req UpdateCustomerRequest) (*CustomerResponse, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := customer.Update(req.Name, req.Email, req.Phone, req.Address); err != nil {
		return nil, err
	}

	if err := s.customerRepo.Save(ctx, customer); err != nil {
		return nil, err
	}

	return ToCustomerResponse(customer), nil
}

// Delete deletes a customer. A customer referenced by invoices cannot
// be removed.
func (s *CustomerService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.customerRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.invoiceRepo.CountByCustomer(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("CONFLICT", "Cannot delete customer with existing invoices")
	}

	return s.customerRepo.Delete(ctx, id)
}
