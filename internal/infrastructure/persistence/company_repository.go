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

// GormCompanyRepository implements CompanyRepository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByID finds a company by its ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*invoicing.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all companies matching the filter
func (r *GormCompanyRepository) FindAll(ctx context.Context, filter shared.Filter) ([]invoicing.Company, error) {
	var companyModels []models.CompanyModel
	query := applyPartyFilter(r.db.WithContext(ctx).Model(&models.CompanyModel{}), filter, true)

	if err := query.Find(&companyModels).Error; err != nil {
		return nil, err
	}

	companies := make([]invoicing.Company, len(companyModels))
	for i, model := range companyModels {
		companies[i] = *model.ToDomain()
	}
	return companies, nil
}

// Count counts companies matching the filter
func (r *GormCompanyRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := applyPartyFilter(r.db.WithContext(ctx).Model(&models.CompanyModel{}), filter, false)

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a company
func (r *GormCompanyRepository) Save(ctx context.Context, company *invoicing.Company) error {
	model := models.CompanyModelFromDomain(company)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete deletes a company
func (r *GormCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CompanyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// applyPartyFilter applies search, ordering and pagination shared by the
// company and customer tables. The search is case-insensitive on name
// and email so it behaves the same on PostgreSQL and SQLite.
func applyPartyFilter(query *gorm.DB, filter shared.Filter, paginate bool) *gorm.DB {
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
	}

	if !paginate {
		return query
	}

	orderBy := "name"
	if filter.OrderBy == "created_at" {
		orderBy = "created_at"
	}
	orderDir := "ASC"
	if strings.ToLower(filter.OrderDir) == "desc" {
		orderDir = "DESC"
	}
	query = query.Order(orderBy + " " + orderDir)

	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}

	return query
}

// Ensure GormCompanyRepository implements CompanyRepository
var _ invoicing.CompanyRepository = (*GormCompanyRepository)(nil)
