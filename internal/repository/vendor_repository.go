package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vendorhub/internal/model"
)

// VendorRepository defines vendor persistence operations. Vendors are
// write-once in this system: no update or delete path exists.
type VendorRepository interface {
	Create(ctx context.Context, vendor *model.Vendor) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error)
	List(ctx context.Context) ([]model.Vendor, error)
}

type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository.
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *model.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *vendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Vendor, error) {
	var vendor model.Vendor
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&vendor).Error; err != nil {
		return nil, err
	}
	return &vendor, nil
}

// List returns all vendors, newest first.
func (r *vendorRepository) List(ctx context.Context) ([]model.Vendor, error) {
	var vendors []model.Vendor
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&vendors).Error; err != nil {
		return nil, err
	}
	return vendors, nil
}
