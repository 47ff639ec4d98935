package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hidan-dev/employee-records-api/internal/services"
	"go.uber.org/zap"
)

// AuthHandler coordinates the login and admin key check endpoints.
type AuthHandler struct {
	authService *services.AuthService
	logger      *zap.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		logger:      logger,
	}
}

// Login checks a username/password pair submitted as form fields. Both
// default to the empty string when absent. The response carries only a
// status; there is no session to establish.
func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	ok, err := h.authService.Login(username, password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": err.Error(),
		})
		return
	}

	status := "fail"
	if ok {
		status = "success"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// CheckKey validates the shared admin key. A missing or malformed JSON body
// counts as an empty key; the endpoint always answers 200 with an ok flag.
func (h *AuthHandler) CheckKey(c *gin.Context) {
	type CheckKeyRequest struct {
		Key string `json:"key"`
	}

	var req CheckKeyRequest
	// Malformed bodies fall through with an empty key.
	_ = c.ShouldBindJSON(&req)

	ok, err := h.authService.CheckKey(req.Key)
	if err != nil {
		h.logger.Error("admin key check failed", zap.Error(err))
		ok = false
	}

	c.JSON(http.StatusOK, gin.H{"ok": ok})
}
