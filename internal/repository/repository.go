package repository

import (
	"github.com/hidan-dev/employee-records-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindByCredentials finds the user whose username and password both match.
	FindByCredentials(username, password string) (*models.User, error)
}

// AdminKeyRepository defines the interface for admin key data access
type AdminKeyRepository interface {
	// KeyExists reports whether any stored admin key equals the given value.
	KeyExists(key string) (bool, error)
}

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// Create inserts a new employee row.
	Create(employee *models.Employee) error

	// List returns all employees, most recently created first.
	List() ([]models.Employee, error)

	// FindByID finds an employee by ID.
	FindByID(id uint64) (*models.Employee, error)

	// Delete removes an employee row.
	Delete(id uint64) error
}
