package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort string
	MySQLDSN   string
	RedisAddr  string
	RedisDB    int
	RedisPass  string
	JWTSecret  string

	// Object storage (S3-compatible, e.g. MinIO).
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	// S3PublicBaseURL overrides the base used to build public object URLs.
	// Empty means {S3Endpoint}/{S3Bucket}.
	S3PublicBaseURL string

	// AppBaseURL is the externally reachable URL used in verification links.
	AppBaseURL string

	// VendorCategories and CatalogUnits are configuration data rather than
	// closed types; deployments may extend the lists.
	VendorCategories []string
	CatalogUnits     []string

	SwaggerHost string
}

var defaultCategories = []string{
	"Grocery", "Vegetables", "Chicken", "Mutton", "Fish", "Sweet House", "Milk Shop",
}

var defaultUnits = []string{
	"kg", "gram", "piece", "liter", "ml", "dozen", "packet",
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		MySQLDSN:         getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/vendorhub?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		RedisPass:        os.Getenv("REDIS_PASSWORD"),
		JWTSecret:        getEnv("JWT_SECRET", "change-me"),
		S3Endpoint:       getEnv("S3_ENDPOINT", "http://localhost:9000"),
		S3Region:         getEnv("S3_REGION", "us-east-1"),
		S3AccessKey:      getEnv("S3_ACCESS_KEY", "minioadmin"),
		S3SecretKey:      getEnv("S3_SECRET_KEY", "minioadmin"),
		S3Bucket:         getEnv("S3_BUCKET", "images"),
		S3PublicBaseURL:  os.Getenv("S3_PUBLIC_BASE_URL"),
		AppBaseURL:       getEnv("APP_BASE_URL", "http://localhost:8080"),
		VendorCategories: getEnvList("VENDOR_CATEGORIES", defaultCategories),
		CatalogUnits:     getEnvList("CATALOG_UNITS", defaultUnits),
		SwaggerHost:      os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
