package dto

import (
	"path/filepath"
	"time"

	"github.com/hidan-dev/employee-records-api/internal/models"
)

// EmployeeDTO represents an employee in API responses. The raw stored
// filename is never exposed; only the derived public URL is.
type EmployeeDTO struct {
	ID         uint64    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	Role       string    `json:"role"`
	RollNumber string    `json:"roll_number"`
	PhotoURL   *string   `json:"photo_url"`
	CreatedAt  time.Time `json:"created_at"`
}

// PhotoURL returns the server-relative URL for a stored photo filename, or
// nil when there is no photo.
func PhotoURL(file *string) *string {
	if file == nil || *file == "" {
		return nil
	}
	url := "/uploads/" + filepath.Base(*file)
	return &url
}

// ToEmployeeDTO converts an Employee model to EmployeeDTO
func ToEmployeeDTO(employee models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         employee.ID,
		Name:       employee.Name,
		Email:      employee.Email,
		Department: employee.Department,
		Role:       employee.Role,
		RollNumber: employee.RollNumber,
		PhotoURL:   PhotoURL(employee.PhotoFile),
		CreatedAt:  employee.CreatedAt,
	}
}

// ToEmployeeDTOs converts a slice of employees, always returning a non-nil
// slice so empty lists serialize as [] rather than null.
func ToEmployeeDTOs(employees []models.Employee) []EmployeeDTO {
	items := make([]EmployeeDTO, len(employees))
	for i, employee := range employees {
		items[i] = ToEmployeeDTO(employee)
	}
	return items
}
