package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor represents a registered shop with contact and category metadata.
// Vendors are created through registration and never updated or deleted.
type Vendor struct {
	ID        uuid.UUID      `json:"id" gorm:"type:char(36);primaryKey"`
	ShopName  string         `json:"shop_name" gorm:"size:255;not null;index"`
	Location  string         `json:"location" gorm:"size:255;not null"`
	OwnerName string         `json:"owner_name" gorm:"size:255;not null"`
	Phone     string         `json:"phone" gorm:"size:20;not null"`
	Category  string         `json:"category" gorm:"size:50;not null;index"`
	ImageURL  string         `json:"image_url,omitempty" gorm:"size:512"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	Items []CatalogItem `json:"items,omitempty" gorm:"foreignKey:VendorID"`
}

// BeforeCreate sets UUID before creating the record.
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
