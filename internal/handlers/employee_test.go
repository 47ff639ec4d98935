package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hidan-dev/employee-records-api/internal/dto"
	"github.com/hidan-dev/employee-records-api/internal/models"
	"github.com/hidan-dev/employee-records-api/internal/repository"
	"github.com/hidan-dev/employee-records-api/internal/services"
	"github.com/hidan-dev/employee-records-api/internal/storage"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type employeeTestEnv struct {
	db        *gorm.DB
	router    *gin.Engine
	photosDir string
}

func setupEmployeeTestEnv(t *testing.T) employeeTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Employee{}))

	photosDir := t.TempDir()
	photos := storage.NewPhotoStore(photosDir, zap.NewNop())
	service := services.NewEmployeeService(repository.NewEmployeeRepository(db), photos)
	handler := NewEmployeeHandler(service)

	r := gin.New()
	r.POST("/api/employees", handler.Create)
	r.GET("/api/employees", handler.List)
	r.GET("/api/employees/:id", handler.Get)
	r.DELETE("/api/employees/:id", handler.Delete)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return employeeTestEnv{db: db, router: r, photosDir: photosDir}
}

func employeeFields(rollNumber string) map[string]string {
	return map[string]string{
		"name":        "Asha Verma",
		"email":       "asha@example.com",
		"department":  "Engineering",
		"role":        "Developer",
		"roll_number": rollNumber,
	}
}

// postEmployee submits a multipart create request. photoName may be empty for
// requests without a photo part.
func postEmployee(t *testing.T, r *gin.Engine, fields map[string]string, photoName string, photoContent []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for key, value := range fields {
		require.NoError(t, w.WriteField(key, value))
	}
	if photoName != "" {
		fw, err := w.CreateFormFile("photo", photoName)
		require.NoError(t, err)
		_, err = fw.Write(photoContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/employees", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)
	return rec
}

type createEmployeeResponse struct {
	OK         bool    `json:"ok"`
	EmployeeID uint64  `json:"employee_id"`
	PhotoURL   *string `json:"photo_url"`
	Message    string  `json:"message"`
}

func TestEmployeeHandler_Create_NoPhoto(t *testing.T) {
	env := setupEmployeeTestEnv(t)

	w := postEmployee(t, env.router, employeeFields("R-001"), "", nil)

	require.Equal(t, http.StatusCreated, w.Code)

	var response createEmployeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.True(t, response.OK)
	require.NotZero(t, response.EmployeeID)
	require.Nil(t, response.PhotoURL)

	// The row must be retrievable by its id with a null photo URL.
	var employee models.Employee
	require.NoError(t, env.db.First(&employee, response.EmployeeID).Error)
	require.Equal(t, "R-001", employee.RollNumber)
	require.Nil(t, employee.PhotoFile)
}

func TestEmployeeHandler_Create_WithPhoto(t *testing.T) {
	env := setupEmployeeTestEnv(t)

	w := postEmployee(t, env.router, employeeFields("R-042"), "portrait.PNG", []byte("png-bytes"))

	require.Equal(t, http.StatusCreated, w.Code)

	var response createEmployeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.True(t, response.OK)
	require.NotNil(t, response.PhotoURL)
	require.Regexp(t, `^/uploads/R-042_\d+\.png$`, *response.PhotoURL)

	stored := filepath.Join(env.photosDir, path.Base(*response.PhotoURL))
	content, err := os.ReadFile(stored)
	require.NoError(t, err)
	require.Equal(t, []byte("png-bytes"), content)
}

func TestEmployeeHandler_Create_MissingFields(t *testing.T) {
	env := setupEmployeeTestEnv(t)

	fields := employeeFields("R-002")
	fields["email"] = "   " // whitespace-only counts as missing
	delete(fields, "role")

	w := postEmployee(t, env.router, fields, "", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var response createEmployeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.False(t, response.OK)
	require.Equal(t, "Missing fields: email, role", response.Message)

	var count int64
	require.NoError(t, env.db.Model(&models.Employee{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestEmployeeHandler_Create_UnsupportedImageType(t *testing.T) {
	env := setupEmployeeTestEnv(t)

	w := postEmployee(t, env.router, employeeFields("R-003"), "malware.exe", []byte("nope"))

	require.Equal(t, http.StatusUnsupportedMediaType, w.Code)

	// No row inserted, nothing written to the photo directory.
	var count int64
	require.NoError(t, env.db.Model(&models.Employee{}).Count(&count).Error)
	require.Zero(t, count)

	entries, err := os.ReadDir(env.photosDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

func TestEmployeeHandler_Create_DuplicateRollNumber(t *testing.T) {
	env := setupEmployeeTestEnv(t)

	w := postEmployee(t, env.router, employeeFields("R-004"), "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postEmployee(t, env.router, employeeFields("R-004"), "", nil)
	require.Equal(t, http.StatusConflict, w.Code)

	var response createEmployeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.False(t, response.OK)
	require.Equal(t, "Roll number already exists.", response.Message)

	var count int64
	require.NoError(t, env.db.Model(&models.Employee{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}

func TestEmployeeHandler_Create_DuplicateRemovesPhoto(t *testing.T) {
	env := setupEmployeeTestEnv(t)

	w := postEmployee(t, env.router, employeeFields("R-005"), "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// The duplicate insert fails after the photo write; the file must not be
	// left behind.
	w = postEmployee(t, env.router, employeeFields("R-005"), "photo.jpg", []byte("jpg"))
	require.Equal(t, http.StatusConflict, w.Code)

	entries, err := os.ReadDir(env.photosDir)
	require.NoError(t, err)
	require.Empty(t, entries)
}

type listEmployeesResponse struct {
	OK        bool              `json:"ok"`
	Employees []dto.EmployeeDTO `json:"employees"`
}

func TestEmployeeHandler_List_OrderedByIDDescending(t *testing.T) {
	env := setupEmployeeTestEnv(t)

	for _, roll := range []string{"R-010", "R-011", "R-012"} {
		w := postEmployee(t, env.router, employeeFields(roll), "", nil)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response listEmployeesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.True(t, response.OK)
	require.Len(t, response.Employees, 3)

	ids := []uint64{response.Employees[0].ID, response.Employees[1].ID, response.Employees[2].ID}
	require.Equal(t, []uint64{3, 2, 1}, ids)
}

func TestEmployeeHandler_List_Empty(t *testing.T) {
	env := setupEmployeeTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/employees", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, `{"ok":true,"employees":[]}`, w.Body.String())
}

func TestEmployeeHandler_Get(t *testing.T) {
	env := setupEmployeeTestEnv(t)

	w := postEmployee(t, env.router, employeeFields("R-020"), "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/employees/1", nil)
	w2 := httptest.NewRecorder()
	env.router.ServeHTTP(w2, req)

	require.Equal(t, http.StatusOK, w2.Code)

	var response struct {
		OK       bool            `json:"ok"`
		Employee dto.EmployeeDTO `json:"employee"`
	}
	require.NoError(t, json.Unmarshal(w2.Body.Bytes(), &response))
	require.True(t, response.OK)
	require.Equal(t, "R-020", response.Employee.RollNumber)
	require.Nil(t, response.Employee.PhotoURL)
}

func TestEmployeeHandler_Get_NotFound(t *testing.T) {
	env := setupEmployeeTestEnv(t)

	for _, target := range []string{"/api/employees/999", "/api/employees/abc"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		require.Equal(t, http.StatusNotFound, w.Code)
		require.JSONEq(t, `{"ok":false,"message":"Not found"}`, w.Body.String())
	}
}

func TestEmployeeHandler_Delete(t *testing.T) {
	env := setupEmployeeTestEnv(t)

	w := postEmployee(t, env.router, employeeFields("R-030"), "face.jpeg", []byte("jpeg"))
	require.Equal(t, http.StatusCreated, w.Code)

	var created createEmployeeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotNil(t, created.PhotoURL)
	stored := filepath.Join(env.photosDir, path.Base(*created.PhotoURL))

	req := httptest.NewRequest(http.MethodDelete, "/api/employees/1", nil)
	w2 := httptest.NewRecorder()
	env.router.ServeHTTP(w2, req)

	require.Equal(t, http.StatusOK, w2.Code)
	require.JSONEq(t, `{"ok":true,"message":"Employee deleted"}`, w2.Body.String())

	var count int64
	require.NoError(t, env.db.Model(&models.Employee{}).Count(&count).Error)
	require.Zero(t, count)

	_, err := os.Stat(stored)
	require.True(t, os.IsNotExist(err))

	// Deleting the same id again is a 404, not a crash.
	req = httptest.NewRequest(http.MethodDelete, "/api/employees/1", nil)
	w3 := httptest.NewRecorder()
	env.router.ServeHTTP(w3, req)

	require.Equal(t, http.StatusNotFound, w3.Code)
	require.JSONEq(t, `{"ok":false,"message":"Employee not found"}`, w3.Body.String())
}

func TestEmployeeHandler_Delete_NotFound(t *testing.T) {
	env := setupEmployeeTestEnv(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/employees/42", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"ok":false,"message":"Employee not found"}`, w.Body.String())
}
