package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, defaultCategories, cfg.VendorCategories)
	assert.Equal(t, defaultUnits, cfg.CatalogUnits)
	assert.Empty(t, cfg.SwaggerHost)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SWAGGER_HOST", "api.example.com")
	t.Setenv("VENDOR_CATEGORIES", "Bakery, Butcher ,")
	t.Setenv("CATALOG_UNITS", "kg,box")

	cfg := Load()

	assert.Equal(t, "api.example.com", cfg.SwaggerHost)
	assert.Equal(t, []string{"Bakery", "Butcher"}, cfg.VendorCategories)
	assert.Equal(t, []string{"kg", "box"}, cfg.CatalogUnits)
}

func TestGetEnvList_BlankValueFallsBack(t *testing.T) {
	t.Setenv("VENDOR_CATEGORIES", " , ,")

	assert.Equal(t, defaultCategories, getEnvList("VENDOR_CATEGORIES", defaultCategories))
}
