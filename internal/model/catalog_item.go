package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// CatalogItem represents a priced product belonging to exactly one vendor.
// VendorName is a denormalized copy of the vendor's shop name taken at write time.
type CatalogItem struct {
	ID          uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	VendorID    uuid.UUID       `json:"vendor_id" gorm:"type:char(36);not null;index"`
	VendorName  string          `json:"vendor_name" gorm:"size:255;not null"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(20,2);not null"`
	Unit        string          `json:"unit" gorm:"size:20;not null"`
	Description string          `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string          `json:"image_url,omitempty" gorm:"size:512"`
	CreatedAt   time.Time       `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `json:"-" gorm:"index"`

	// Relations
	Vendor Vendor `json:"-" gorm:"foreignKey:VendorID"`
}

// BeforeCreate sets UUID before creating the record.
func (i *CatalogItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
