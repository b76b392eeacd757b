package invoicing

import (
	"context"

	"github.com/google/uuid"

	"github.com/invoicing/backend/internal/domain/invoicing"
	"github.com/invoicing/backend/internal/domain/shared"
)

// CompanyService handles issuing-company business operations
type CompanyService struct {
	companyRepo invoicing.CompanyRepository
	invoiceRepo invoicing.InvoiceRepository
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(
	companyRepo invoicing.CompanyRepository,
	invoiceRepo invoicing.InvoiceRepository,
) *CompanyService {
	return &CompanyService{
		companyRepo: companyRepo,
		invoiceRepo: invoiceRepo,
	}
}

// Create creates a new company
func (s *CompanyService) Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	company, err := invoicing.NewCompany(req.Name, req.Address, req.Phone, req.Email)
	if err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	return ToCompanyResponse(company), nil
}

// GetByID retrieves a company by ID
func (s *CompanyService) GetByID(ctx context.Context, id uuid.UUID) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToCompanyResponse(company), nil
}

// List retrieves companies matching the filter
func (s *CompanyService) List(ctx context.Context, filter PartyListFilter) ([]CompanyResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	domainFilter.OrderBy = "name"
	domainFilter.OrderDir = "asc"
	domainFilter.Search = filter.Search
	if filter.Page > 0 && filter.PageSize > 0 {
		domainFilter.Page = filter.Page
		domainFilter.PageSize = filter.PageSize
	}

	companies, err := s.companyRepo.FindAll(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.companyRepo.Count(ctx, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]CompanyResponse, len(companies))
	for i, company := range companies {
		responses[i] = *ToCompanyResponse(&company)
	}

	return responses, total, nil
}

// Update updates an existing company
func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, req UpdateCompanyRequest) (*CompanyResponse, error) {
	company, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := company.Update(req.Name, req.Address, req.Phone, req.Email); err != nil {
		return nil, err
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}

	return ToCompanyResponse(company), nil
}

// Delete deletes a company. A company referenced by invoices cannot be
// removed.
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.companyRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.invoiceRepo.CountByCompany(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.NewDomainError("CONFLICT", "Cannot delete company with existing invoices")
	}

	return s.companyRepo.Delete(ctx, id)
}
