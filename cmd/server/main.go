package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"vendorhub/docs"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"vendorhub/internal/auth"
	"vendorhub/internal/cache"
	"vendorhub/internal/config"
	"vendorhub/internal/db"
	"vendorhub/internal/handler"
	"vendorhub/internal/mailer"
	"vendorhub/internal/model"
	"vendorhub/internal/repository"
	"vendorhub/internal/router"
	"vendorhub/internal/service"
	"vendorhub/internal/storage"
)

// @title Vendor Management API
// @version 1.0
// @description Administrative API for registering vendors and managing per-vendor product catalogs, with JWT authentication and image uploads.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.CatalogItem{},
			&model.Vendor{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Vendor{},
		&model.CatalogItem{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	imageStore, err := storage.NewImageStore(
		context.Background(),
		cfg.S3Endpoint,
		cfg.S3Region,
		cfg.S3AccessKey,
		cfg.S3SecretKey,
		cfg.S3Bucket,
		cfg.S3PublicBaseURL,
	)
	if err != nil {
		log.Fatalf("image store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	vendorRepo := repository.NewVendorRepository(gormDB)
	catalogRepo := repository.NewCatalogRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)
	mail := mailer.NewLogMailer(cfg.AppBaseURL)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore, mail)
	vendorService := service.NewVendorService(vendorRepo, imageStore, cacheClient, cfg.VendorCategories)
	catalogService := service.NewCatalogService(catalogRepo, vendorRepo, imageStore, cfg.CatalogUnits)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	vendorHandler := handler.NewVendorHandler(vendorService)
	catalogHandler := handler.NewCatalogHandler(catalogService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		vendorHandler,
		catalogHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
