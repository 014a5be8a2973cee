package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "vendorhub/internal/errors"
	"vendorhub/internal/model"
	"vendorhub/internal/repository"
	"vendorhub/internal/storage"
)

const catalogImageFolder = "catalog"

// CatalogItemInput carries the catalog item form fields. Price arrives as
// the raw form string and is parsed during validation.
type CatalogItemInput struct {
	Name        string
	Price       string
	Unit        string
	Description string
}

// CatalogService manages the product catalog of a single vendor.
type CatalogService interface {
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]model.CatalogItem, error)
	Create(ctx context.Context, vendorID uuid.UUID, input CatalogItemInput, image *storage.File) (*model.CatalogItem, error)
	// Update replaces the item's fields. Without a new image the existing
	// image URL is preserved; with one it is replaced (the old object is
	// orphaned in storage).
	Update(ctx context.Context, itemID uuid.UUID, input CatalogItemInput, image *storage.File) (*model.CatalogItem, error)
	Delete(ctx context.Context, itemID uuid.UUID) error
}

type catalogService struct {
	catalogRepo repository.CatalogRepository
	vendorRepo  repository.VendorRepository
	uploader    ImageUploader
	units       []string
}

// NewCatalogService builds a CatalogService.
func NewCatalogService(catalogRepo repository.CatalogRepository, vendorRepo repository.VendorRepository, uploader ImageUploader, units []string) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		vendorRepo:  vendorRepo,
		uploader:    uploader,
		units:       units,
	}
}

// validate parses and checks the form fields before any network call.
func (s *catalogService) validate(input CatalogItemInput) (decimal.Decimal, error) {
	if strings.TrimSpace(input.Name) == "" {
		return decimal.Zero, apperrors.NewValidationError("item name is required")
	}

	price, err := decimal.NewFromString(strings.TrimSpace(input.Price))
	if err != nil {
		return decimal.Zero, apperrors.NewValidationError("price must be a number")
	}
	if !price.IsPositive() {
		return decimal.Zero, apperrors.NewValidationError("price must be greater than zero")
	}

	for _, u := range s.units {
		if input.Unit == u {
			return price, nil
		}
	}
	return decimal.Zero, apperrors.NewValidationError("unknown unit %q", input.Unit)
}

func (s *catalogService) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]model.CatalogItem, error) {
	return s.catalogRepo.ListByVendor(ctx, vendorID)
}

func (s *catalogService) Create(ctx context.Context, vendorID uuid.UUID, input CatalogItemInput, image *storage.File) (*model.CatalogItem, error) {
	price, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	vendor, err := s.vendorRepo.FindByID(ctx, vendorID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrVendorNotFound
		}
		return nil, err
	}

	// Upload before persist, same ordering as vendor registration.
	var imageURL string
	if image != nil {
		url, err := s.uploader.Upload(ctx, image, catalogImageFolder)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	item := &model.CatalogItem{
		VendorID:    vendor.ID,
		VendorName:  vendor.ShopName,
		Name:        input.Name,
		Price:       price,
		Unit:        input.Unit,
		Description: input.Description,
		ImageURL:    imageURL,
	}

	if err := s.catalogRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) Update(ctx context.Context, itemID uuid.UUID, input CatalogItemInput, image *storage.File) (*model.CatalogItem, error) {
	price, err := s.validate(input)
	if err != nil {
		return nil, err
	}

	item, err := s.catalogRepo.FindByID(ctx, itemID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrItemNotFound
		}
		return nil, err
	}

	if image != nil {
		url, err := s.uploader.Upload(ctx, image, catalogImageFolder)
		if err != nil {
			return nil, err
		}
		item.ImageURL = url
	}

	item.Name = input.Name
	item.Price = price
	item.Unit = input.Unit
	item.Description = input.Description

	if err := s.catalogRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *catalogService) Delete(ctx context.Context, itemID uuid.UUID) error {
	if err := s.catalogRepo.Delete(ctx, itemID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return apperrors.ErrItemNotFound
		}
		return err
	}
	return nil
}
