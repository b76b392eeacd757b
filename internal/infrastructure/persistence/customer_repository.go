package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/invoicing/backend/internal/domain/invoicing"
	"github.com/invoicing/backend/internal/domain/shared"
	"github.com/invoicing/backend/internal/infrastructure/persistence/models"
)

// GormCustomerRepository implements CustomerRepository using GORM
type GormCustomerRepository struct {
	db *gorm.DB
}

// NewGormCustomerRepository creates a new GormCustomerRepository
func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

// FindByID finds a customer by its ID
func (r *GormCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Customer, error) {
	var model models.CustomerModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all customers matching the filter
func (r *GormCustomerRepository) FindAll(ctx context.Context, filter shared.Filter) ([]invoicing.Customer, error) {
	var customerModels []models.CustomerModel
	query := applyPartyFilter(r.db.WithContext(ctx).Model(&models.CustomerModel{}), filter, true)

	if err := query.Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]invoicing.Customer, len(customerModels))
	for i, model := range customerModels {
		customers[i] = *model.ToDomain()
	}
	return customers, nil
}

// Count counts customers matching the filter
func (r *GormCustomerRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyPartyFilter(r.db.WithContext(ctx).Model(&models.CustomerModel{}), filter, false)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a customer
func (r *GormCustomerRepository) Save(ctx context.Context, customer *invoicing.Customer) error {
	model := models.CustomerModelFromDomain(customer)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a customer
func (r *GormCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomerModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormCustomerRepository implements CustomerRepository
var _ invoicing.CustomerRepository = (*GormCustomerRepository)(nil)
