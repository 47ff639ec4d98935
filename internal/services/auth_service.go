package services

import (
	"errors"
	"fmt"

	"github.com/hidan-dev/employee-records-api/internal/repository"
	"gorm.io/gorm"
)

// AuthService handles the stateless credential and admin key checks. No
// session or token is ever issued; callers remember the result themselves.
type AuthService struct {
	userRepo     repository.UserRepository
	adminKeyRepo repository.AdminKeyRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, adminKeyRepo repository.AdminKeyRepository) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		adminKeyRepo: adminKeyRepo,
	}
}

// Login reports whether a user row matches the given username and password
// exactly. A non-matching pair is not an error; storage failures are.
func (s *AuthService) Login(username, password string) (bool, error) {
	if _, err := s.userRepo.FindByCredentials(username, password); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check credentials: %w", err)
	}
	return true, nil
}

// CheckKey reports whether the given value matches a stored admin key.
func (s *AuthService) CheckKey(key string) (bool, error) {
	ok, err := s.adminKeyRepo.KeyExists(key)
	if err != nil {
		return false, fmt.Errorf("failed to check admin key: %w", err)
	}
	return ok, nil
}
