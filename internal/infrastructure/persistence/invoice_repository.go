package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/invoicing/backend/internal/domain/invoicing"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/infrastructure/persistence/models"
)

// GormInvoiceRepository implements InvoiceRepository using GORM.
// Invoices are loaded as whole aggregates: items in position order
// together with the referenced company and customer.
type GormInvoiceRepository struct {
	db *gorm.DB
}

// NewGormInvoiceRepository creates a new GormInvoiceRepository
func NewGormInvoiceRepository(db *gorm.DB) *GormInvoiceRepository {
	return &GormInvoiceRepository{db: db}
}

func withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Company").
		Preload("Customer")
}

// FindByID finds an invoice with its items, company and customer
func (r *GormInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Invoice, error) {
	var model models.InvoiceModel
	if err := withAssociations(r.db.WithContext(ctx)).First(&model, "invoices.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds an invoice by its unique number
func (r *GormInvoiceRepository) FindByNumber(ctx context.Context, number string) (*invoicing.Invoice, error) {
	var model models.InvoiceModel
	if err := withAssociations(r.db.WithContext(ctx)).First(&model, "invoices.number = ?", number).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ExistsByNumber checks if an invoice with the given number exists
func (r *GormInvoiceRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("number = ?", number).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindAll finds invoices matching the filter, newest issue date first.
// The search token matches the invoice number or the customer name
// case-insensitively.
func (r *GormInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]invoicing.Invoice, error) {
	var invoiceModels []models.InvoiceModel
	query := withAssociations(r.applyFilter(r.db.WithContext(ctx).Model(&models.InvoiceModel{}), filter, true))

	if err := query.Find(&invoiceModels).Error; err != nil {
		return nil, err
	}

	invoices := make([]invoicing.Invoice, len(invoiceModels))
	for i, model := range invoiceModels {
		invoices[i] = *model.ToDomain()
	}
	return invoices, nil
}

// Count counts invoices matching the filter
func (r *GormInvoiceRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.InvoiceModel{}), filter, false)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCompany counts invoices referencing a company
func (r *GormInvoiceRepository) CountByCompany(ctx context.Context, companyID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("company_id = ?", companyID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByCustomer counts invoices referencing a customer
func (r *GormInvoiceRepository) CountByCustomer(ctx context.Context, customerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.InvoiceModel{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates an invoice together with its full item set.
// The stored items are replaced wholesale so removed lines disappear.
// A duplicate invoice number maps to ErrAlreadyExists.
func (r *GormInvoiceRepository) Save(ctx context.Context, invoice *invoicing.Invoice) error {
	model := models.InvoiceModelFromDomain(invoice)
	items := model.Items
	model.Items = nil

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Items", "Company", "Customer").Save(model).Error; err != nil {
			return err
		}
		if err := tx.Where("invoice_id = ?", model.ID).Delete(&models.InvoiceItemModel{}).Error; err != nil {
			return err
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Delete deletes an invoice and cascades to its items. The explicit
// item delete keeps behavior identical on databases where the foreign
// key cascade is not enforced.
func (r *GormInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("invoice_id = ?", id).Delete(&models.InvoiceItemModel{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.InvoiceModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// applyFilter applies search, status, ordering and pagination. Search
// needs the customers join; LOWER LIKE keeps it portable across
// PostgreSQL and SQLite.
func (r *GormInvoiceRepository) applyFilter(query *gorm.DB, filter shared.Filter, paginate bool) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(strings.TrimSpace(filter.Search)) + "%"
		query = query.
			Joins("LEFT JOIN customers ON customers.id = invoices.customer_id").
			Where("LOWER(invoices.number) LIKE ? OR LOWER(customers.name) LIKE ?", pattern, pattern)
	}

	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("invoices.status = ?", status)
	}

	if !paginate {
		return query
	}

	// Newest issue date first; same-day invoices keep insertion order,
	// matching FilterInvoices.
	orderDir := "DESC"
	if strings.ToLower(filter.OrderDir) == "asc" {
		orderDir = "ASC"
	}
	query = query.Order("invoices.date_created " + orderDir).Order("invoices.created_at ASC")

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	return query
}

// Ensure GormInvoiceRepository implements InvoiceRepository
var _ invoicing.InvoiceRepository = (*GormInvoiceRepository)(nil)
