package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultMaxUploadBytes caps request bodies, and therefore photo uploads, at 6 MiB.
const DefaultMaxUploadBytes = 6 * 1024 * 1024

type Config struct {
	Port           string
	GinMode        string
	DBDriver       string
	DBPath         string
	DBDSN          string
	UploadDir      string
	AssetsDir      string
	MaxUploadBytes int64
	LogLevel       string
	SeedUsername   string
	SeedPassword   string
	SeedAdminKey   string
}

// Load reads configuration from the environment, with an optional .env file
// for local development. It also ensures the upload directory exists.
func Load() (*Config, error) {
	// Real environment variables take precedence over .env entries.
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "8000"),
		GinMode:        getEnv("GIN_MODE", "debug"),
		DBDriver:       getEnv("DB_DRIVER", "sqlite"),
		DBPath:         getEnv("DB_PATH", "database.sql"),
		DBDSN:          getEnv("DB_DSN", ""),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		AssetsDir:      getEnv("ASSETS_DIR", "."),
		MaxUploadBytes: getEnvAsInt64("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		SeedUsername:   getEnv("SEED_USERNAME", "hidan"),
		SeedPassword:   getEnv("SEED_PASSWORD", "killer"),
		SeedAdminKey:   getEnv("SEED_ADMIN_KEY", "ceo@2025"),
	}

	if cfg.DBDriver != "sqlite" && cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required when DB_DRIVER is %q", cfg.DBDriver)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", cfg.UploadDir, err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, err := strconv.ParseInt(os.Getenv(key), 10, 64); err == nil {
		return value
	}
	return defaultValue
}
