package database

import (
	"fmt"

	"github.com/hidan-dev/employee-records-api/internal/config"
	"github.com/hidan-dev/employee-records-api/internal/models"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the configured database. SQLite is the default backend; MySQL
// and PostgreSQL are selectable via DB_DRIVER/DB_DSN. TranslateError lets
// duplicate-key violations surface as gorm.ErrDuplicatedKey on every backend.
func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "mysql":
		dialector = mysql.Open(cfg.DBDSN)
	case "postgres":
		dialector = postgres.Open(cfg.DBDSN)
	default:
		dialector = sqlite.Open(cfg.DBPath)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return nil
}

// Migrate ensures the three tables exist. The schema is fixed and additive
// only; there is no migration versioning.
func Migrate() error {
	err := DB.AutoMigrate(
		&models.User{},
		&models.AdminKey{},
		&models.Employee{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Seed inserts the demo login account and admin key when absent. Both inserts
// key on a unique column via FirstOrCreate inside one transaction, so
// concurrent startups cannot double-seed.
func Seed(cfg *config.Config) error {
	return DB.Transaction(func(tx *gorm.DB) error {
		user := models.User{Username: cfg.SeedUsername}
		if err := tx.Where(&user).
			Attrs(models.User{Password: cfg.SeedPassword}).
			FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to seed demo user: %w", err)
		}

		key := models.AdminKey{AdminPass: cfg.SeedAdminKey}
		if err := tx.Where(&key).FirstOrCreate(&key).Error; err != nil {
			return fmt.Errorf("failed to seed admin key: %w", err)
		}

		return nil
	})
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
