package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vendorhub/internal/model"
)

// CatalogRepository defines catalog item persistence operations.
type CatalogRepository interface {
	Create(ctx context.Context, item *model.CatalogItem) error
	Update(ctx context.Context, item *model.CatalogItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]model.CatalogItem, error)
}

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository creates a new catalog repository.
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) Create(ctx context.Context, item *model.CatalogItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *catalogRepository) Update(ctx context.Context, item *model.CatalogItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *catalogRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.CatalogItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *catalogRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.CatalogItem, error) {
	var item model.CatalogItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByVendor returns the items of one vendor, newest first.
func (r *catalogRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]model.CatalogItem, error) {
	var items []model.CatalogItem
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
