package repository

import (
	"github.com/hidan-dev/employee-records-api/internal/models"
	"gorm.io/gorm"
)

// GormAdminKeyRepository is a GORM implementation of AdminKeyRepository
type GormAdminKeyRepository struct {
	db *gorm.DB
}

// NewAdminKeyRepository creates a new AdminKeyRepository
func NewAdminKeyRepository(db *gorm.DB) AdminKeyRepository {
	return &GormAdminKeyRepository{db: db}
}

// KeyExists reports whether any stored admin key equals the given value.
func (r *GormAdminKeyRepository) KeyExists(key string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.AdminKey{}).
		Where("admin_pass = ?", key).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
