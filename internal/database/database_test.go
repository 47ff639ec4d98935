package database

import (
	"testing"

	"github.com/hidan-dev/employee-records-api/internal/config"
	"github.com/hidan-dev/employee-records-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestSeed_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, Migrate())

	cfg := &config.Config{
		SeedUsername: "hidan",
		SeedPassword: "killer",
		SeedAdminKey: "ceo@2025",
	}

	require.NoError(t, Seed(cfg))
	require.NoError(t, Seed(cfg))

	var users, keys int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.AdminKey{}).Count(&keys).Error)
	require.EqualValues(t, 1, users)
	require.EqualValues(t, 1, keys)

	var user models.User
	require.NoError(t, db.First(&user).Error)
	require.Equal(t, "hidan", user.Username)
	require.Equal(t, "killer", user.Password)
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	SetDB(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	require.NoError(t, Migrate())
	require.NoError(t, Migrate())

	for _, table := range []string{"users", "admin_keys", "employees"} {
		require.True(t, db.Migrator().HasTable(table), table)
	}
}
