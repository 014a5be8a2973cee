package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"log"

	"gorm.io/gorm"

	"vendorhub/internal/config"
	"vendorhub/internal/db"
	"vendorhub/internal/model"
	"vendorhub/internal/repository"
	"vendorhub/internal/service"
	"vendorhub/internal/storage"
)

//go:embed seed_data.json
var seedData []byte

// SeedVendor is one vendor and its catalog in the embedded fixture.
type SeedVendor struct {
	ShopName  string     `json:"shop_name"`
	Location  string     `json:"location"`
	OwnerName string     `json:"owner_name"`
	Phone     string     `json:"phone"`
	Category  string     `json:"category"`
	Items     []SeedItem `json:"items"`
}

// SeedItem is one catalog item in the fixture. Price is the raw form string,
// parsed by the catalog service like any other submission.
type SeedItem struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// noopUploader satisfies the service uploader dependency; the fixture
// carries no images.
type noopUploader struct{}

func (noopUploader) Upload(ctx context.Context, f *storage.File, folder string) (string, error) {
	return "", nil
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Vendor{}, &model.CatalogItem{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	var seedVendors []SeedVendor
	if err := json.Unmarshal(seedData, &seedVendors); err != nil {
		log.Fatalf("Failed to parse seed fixture: %v", err)
	}
	log.Printf("Loaded %d vendors from fixture", len(seedVendors))

	vendorRepo := repository.NewVendorRepository(gormDB)
	catalogRepo := repository.NewCatalogRepository(gormDB)
	vendorService := service.NewVendorService(vendorRepo, noopUploader{}, nil, cfg.VendorCategories)
	catalogService := service.NewCatalogService(catalogRepo, vendorRepo, noopUploader{}, cfg.CatalogUnits)

	ctx := context.Background()
	vendorsCreated, itemsCreated, skipped := 0, 0, 0

	for _, sv := range seedVendors {
		if exists, err := vendorExists(ctx, gormDB, sv.ShopName); err != nil {
			log.Fatalf("Failed to check vendor %q: %v", sv.ShopName, err)
		} else if exists {
			log.Printf("Skipping existing vendor: %s", sv.ShopName)
			skipped++
			continue
		}

		vendor, err := vendorService.Register(ctx, service.RegisterVendorInput{
			ShopName:  sv.ShopName,
			Location:  sv.Location,
			OwnerName: sv.OwnerName,
			Phone:     sv.Phone,
			Category:  sv.Category,
		}, nil)
		if err != nil {
			log.Fatalf("Failed to create vendor %q: %v", sv.ShopName, err)
		}
		vendorsCreated++

		for _, si := range sv.Items {
			if _, err := catalogService.Create(ctx, vendor.ID, service.CatalogItemInput{
				Name:        si.Name,
				Price:       si.Price,
				Unit:        si.Unit,
				Description: si.Description,
			}, nil); err != nil {
				log.Fatalf("Failed to create item %q for vendor %q: %v", si.Name, sv.ShopName, err)
			}
			itemsCreated++
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Vendors created: %d", vendorsCreated)
	log.Printf("  - Catalog items created: %d", itemsCreated)
	log.Printf("  - Vendors skipped (already present): %d", skipped)
}

func vendorExists(ctx context.Context, gormDB *gorm.DB, shopName string) (bool, error) {
	var count int64
	if err := gormDB.WithContext(ctx).Model(&model.Vendor{}).
		Where("shop_name = ?", shopName).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
