package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"vendorhub/internal/cache"
	apperrors "vendorhub/internal/errors"
	"vendorhub/internal/model"
	"vendorhub/internal/repository"
	"vendorhub/internal/storage"
)

const (
	vendorListCacheKey = "vendors:all"
	vendorListCacheTTL = 5 * time.Minute

	vendorImageFolder = "vendors"
)

// ImageUploader uploads a validated image and returns its public URL.
type ImageUploader interface {
	Upload(ctx context.Context, f *storage.File, folder string) (string, error)
}

// RegisterVendorInput carries the vendor registration form fields.
// All of them are required.
type RegisterVendorInput struct {
	ShopName  string
	Location  string
	OwnerName string
	Phone     string
	Category  string
}

// VendorService exposes vendor registration and listing.
type VendorService interface {
	// Register validates the input, uploads the image if one is attached
	// (the upload must succeed before anything is persisted), and inserts
	// the vendor record.
	Register(ctx context.Context, input RegisterVendorInput, image *storage.File) (*model.Vendor, error)
	List(ctx context.Context) ([]model.Vendor, error)
}

type vendorService struct {
	repo       repository.VendorRepository
	uploader   ImageUploader
	cache      *cache.Client
	categories []string
}

// NewVendorService builds a VendorService.
func NewVendorService(repo repository.VendorRepository, uploader ImageUploader, cache *cache.Client, categories []string) VendorService {
	return &vendorService{
		repo:       repo,
		uploader:   uploader,
		cache:      cache,
		categories: categories,
	}
}

func (s *vendorService) validate(input RegisterVendorInput) error {
	switch {
	case strings.TrimSpace(input.ShopName) == "":
		return apperrors.NewValidationError("shop name is required")
	case strings.TrimSpace(input.Location) == "":
		return apperrors.NewValidationError("location is required")
	case strings.TrimSpace(input.OwnerName) == "":
		return apperrors.NewValidationError("owner name is required")
	case strings.TrimSpace(input.Phone) == "":
		return apperrors.NewValidationError("phone is required")
	case strings.TrimSpace(input.Category) == "":
		return apperrors.NewValidationError("category is required")
	}

	for _, c := range s.categories {
		if input.Category == c {
			return nil
		}
	}
	return apperrors.NewValidationError("unknown category %q", input.Category)
}

func (s *vendorService) Register(ctx context.Context, input RegisterVendorInput, image *storage.File) (*model.Vendor, error) {
	if err := s.validate(input); err != nil {
		return nil, err
	}

	// Upload before persist: a failed upload aborts registration entirely,
	// so no vendor record exists without its intended image.
	var imageURL string
	if image != nil {
		url, err := s.uploader.Upload(ctx, image, vendorImageFolder)
		if err != nil {
			return nil, err
		}
		imageURL = url
	}

	vendor := &model.Vendor{
		ShopName:  input.ShopName,
		Location:  input.Location,
		OwnerName: input.OwnerName,
		Phone:     input.Phone,
		Category:  input.Category,
		ImageURL:  imageURL,
	}

	if err := s.repo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, vendorListCacheKey)
	return vendor, nil
}

// List returns all vendors newest first, served from cache when warm.
func (s *vendorService) List(ctx context.Context) ([]model.Vendor, error) {
	if data, _ := s.cache.Get(ctx, vendorListCacheKey); data != nil {
		var cached []model.Vendor
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	vendors, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(vendors); err == nil {
		_ = s.cache.Set(ctx, vendorListCacheKey, payload, vendorListCacheTTL)
	}
	return vendors, nil
}

// CategoryAll disables the category predicate in FilterVendors.
const CategoryAll = "All"

// FilterVendors narrows a vendor list by a free-text search term and an
// exact category. The search matches case-insensitively against shop name,
// location, and owner name (any of the three). An empty term or an empty /
// "All" category disables the respective predicate. The function is pure:
// it never mutates the input slice.
func FilterVendors(vendors []model.Vendor, searchTerm, category string) []model.Vendor {
	term := strings.ToLower(strings.TrimSpace(searchTerm))
	filterCategory := category != "" && category != CategoryAll

	out := make([]model.Vendor, 0, len(vendors))
	for _, v := range vendors {
		if term != "" {
			matches := strings.Contains(strings.ToLower(v.ShopName), term) ||
				strings.Contains(strings.ToLower(v.Location), term) ||
				strings.Contains(strings.ToLower(v.OwnerName), term)
			if !matches {
				continue
			}
		}
		if filterCategory && v.Category != category {
			continue
		}
		out = append(out, v)
	}
	return out
}
