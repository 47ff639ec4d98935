package repository

import (
	"github.com/hidan-dev/employee-records-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// FindByCredentials finds the user whose username and password both match.
// Returns gorm.ErrRecordNotFound when no row matches.
func (r *GormUserRepository) FindByCredentials(username, password string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("username = ? AND password = ?", username, password).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
