package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/hidan-dev/employee-records-api/internal/dto"
	apierrors "github.com/hidan-dev/employee-records-api/internal/errors"
	"github.com/hidan-dev/employee-records-api/internal/services"
	"github.com/hidan-dev/employee-records-api/internal/storage"
)

// EmployeeHandler coordinates the employee record endpoints.
type EmployeeHandler struct {
	employeeService *services.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler.
func NewEmployeeHandler(employeeService *services.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		employeeService: employeeService,
	}
}

// Create registers a new employee from a multipart form with an optional
// photo part.
func (h *EmployeeHandler) Create(c *gin.Context) {
	photo, err := c.FormFile("photo")
	if err != nil {
		photo = nil // photo is optional
	}

	employee, err := h.employeeService.Create(services.CreateEmployeeInput{
		Name:       c.PostForm("name"),
		Email:      c.PostForm("email"),
		Department: c.PostForm("department"),
		Role:       c.PostForm("role"),
		RollNumber: c.PostForm("roll_number"),
		Photo:      photo,
	})
	if err != nil {
		var missing *services.MissingFieldsError
		switch {
		case errors.As(err, &missing):
			apierrors.BadRequest(c, "Missing fields: "+strings.Join(missing.Fields, ", "))
		case errors.Is(err, storage.ErrUnsupportedType):
			apierrors.UnsupportedMediaType(c, "Unsupported image type")
		case errors.Is(err, services.ErrDuplicateRollNumber):
			apierrors.Conflict(c, "Roll number already exists.")
		default:
			apierrors.InternalError(c, "Failed to create employee")
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"ok":          true,
		"employee_id": employee.ID,
		"photo_url":   dto.PhotoURL(employee.PhotoFile),
	})
}

// List returns all employees, most recently created first.
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.employeeService.List()
	if err != nil {
		apierrors.InternalError(c, "Failed to fetch employees")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":        true,
		"employees": dto.ToEmployeeDTOs(employees),
	})
}

// Get returns a single employee by ID.
func (h *EmployeeHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Not found")
		return
	}

	employee, err := h.employeeService.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			apierrors.NotFound(c, "Not found")
			return
		}
		apierrors.InternalError(c, "Failed to fetch employee")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":       true,
		"employee": dto.ToEmployeeDTO(*employee),
	})
}

// Delete removes an employee and, best-effort, their photo file.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.NotFound(c, "Employee not found")
		return
	}

	if err := h.employeeService.Delete(id); err != nil {
		if errors.Is(err, services.ErrEmployeeNotFound) {
			apierrors.NotFound(c, "Employee not found")
			return
		}
		apierrors.InternalError(c, "Failed to delete employee")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Employee deleted",
	})
}
