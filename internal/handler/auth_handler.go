package handler

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AppariLavanya/inventory-management-system/internal/service"
	"github.com/AppariLavanya/inventory-management-system/internal/utils"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, utils.ErrEmailExists) {
			utils.Error(c, 409, "EMAIL_EXISTS", "Email already registered")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to register user")
		return
	}

	utils.Success(c, 201, "User registered successfully", user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, utils.ErrInvalidCredentials) {
			utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to login")
		return
	}

	utils.Success(c, 200, "Login successful", resp)
}

// Logout revokes the caller's token. Requires the JWT middleware to have
// stashed the token id and expiry in the request context.
func (h *AuthHandler) Logout(c *gin.Context) {
	tokenID := c.GetString("token_id")
	expiresAt, _ := c.Get("token_expires_at")
	exp, _ := expiresAt.(time.Time)

	if err := h.authService.Logout(c.Request.Context(), tokenID, exp); err != nil {
		if errors.Is(err, utils.ErrInvalidToken) {
			utils.Error(c, 401, "INVALID_TOKEN", "Invalid token")
			return
		}
		utils.Error(c, 500, "INTERNAL_ERROR", "Failed to logout")
		return
	}

	utils.Success(c, 200, "Logout successful", nil)
}
