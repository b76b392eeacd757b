package invoicing

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/invoicing/backend/internal/domain/invoicing"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/infrastructure/pdf"
)

// MockCompanyRepository is a mock implementation of CompanyRepository
type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]invoicing.Company, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]invoicing.Company), args.Error(1)
}

func (m *MockCompanyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *invoicing.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCustomerRepository is a mock implementation of CustomerRepository
type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]invoicing.Customer, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]invoicing.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *invoicing.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInvoiceRepository is a mock implementation of InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByNumber(ctx context.Context, number string) (*invoicing.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]invoicing.Invoice, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]invoicing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	args := m.Called(ctx, companyID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *invoicing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRenderer is a mock implementation of pdf.Renderer
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, doc *pdf.Document) ([]byte, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockRenderer) Close() error {
	args := m.Called()
	return args.Error(0)
}
