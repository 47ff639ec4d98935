package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/hidan-dev/employee-records-api/internal/models"
	"github.com/hidan-dev/employee-records-api/internal/repository"
	"github.com/hidan-dev/employee-records-api/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrDuplicateRollNumber = errors.New("roll number already exists")
	ErrEmployeeNotFound    = errors.New("employee not found")
)

// MissingFieldsError lists every required field absent from a create request,
// not just the first one found.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return "missing fields: " + strings.Join(e.Fields, ", ")
}

// EmployeeService handles employee record business logic.
type EmployeeService struct {
	repo   repository.EmployeeRepository
	photos *storage.PhotoStore
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(repo repository.EmployeeRepository, photos *storage.PhotoStore) *EmployeeService {
	return &EmployeeService{
		repo:   repo,
		photos: photos,
	}
}

// CreateEmployeeInput carries the multipart form fields of a create request.
// Photo is optional and may be nil.
type CreateEmployeeInput struct {
	Name       string
	Email      string
	Department string
	Role       string
	RollNumber string
	Photo      *multipart.FileHeader
}

// Create validates the input, stores the photo if one was attached, and
// inserts the employee row. Validation happens before any side effect, and a
// failed insert removes the just-written photo so no orphan is left behind.
func (s *EmployeeService) Create(input CreateEmployeeInput) (*models.Employee, error) {
	employee := &models.Employee{
		Name:       strings.TrimSpace(input.Name),
		Email:      strings.TrimSpace(input.Email),
		Department: strings.TrimSpace(input.Department),
		Role:       strings.TrimSpace(input.Role),
		RollNumber: strings.TrimSpace(input.RollNumber),
	}

	var missing []string
	for _, field := range []struct {
		name  string
		value string
	}{
		{"name", employee.Name},
		{"email", employee.Email},
		{"department", employee.Department},
		{"role", employee.Role},
		{"roll_number", employee.RollNumber},
	} {
		if field.value == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingFieldsError{Fields: missing}
	}

	if input.Photo != nil && input.Photo.Filename != "" {
		name, err := s.photos.Save(input.Photo, employee.RollNumber)
		if err != nil {
			return nil, err
		}
		employee.PhotoFile = &name
	}

	if err := s.repo.Create(employee); err != nil {
		if employee.PhotoFile != nil {
			s.photos.Remove(*employee.PhotoFile)
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateRollNumber
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return employee, nil
}

// List returns all employees, most recently created first.
func (s *EmployeeService) List() ([]models.Employee, error) {
	employees, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// Get retrieves an employee by ID.
func (s *EmployeeService) Get(id uint64) (*models.Employee, error) {
	employee, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to find employee: %w", err)
	}
	return employee, nil
}

// Delete removes an employee row, then removes the associated photo file
// best-effort. A dangling photo reference never fails the delete.
func (s *EmployeeService) Delete(id uint64) error {
	employee, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to find employee: %w", err)
	}

	if err := s.repo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}

	if employee.PhotoFile != nil {
		s.photos.Remove(*employee.PhotoFile)
	}

	return nil
}
