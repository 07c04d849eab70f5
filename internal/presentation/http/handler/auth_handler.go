package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/karibugroceries/karibu-api/internal/application/service"
	"github.com/karibugroceries/karibu-api/internal/domain/enum"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/dto/request"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/dto/response"
	"github.com/karibugroceries/karibu-api/internal/presentation/http/middleware"
)

// AuthHandler handles session-related HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles the name/role/branch login selection
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &service.LoginInput{
		Name:   req.Name,
		Role:   enum.UserRole(req.Role),
		Branch: enum.Branch(req.Branch),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Logged in successfully", result)
}

// Logout acknowledges the end of a session. Tokens are stateless, so there
// is nothing to revoke server-side; the client discards the token.
func (h *AuthHandler) Logout(c *gin.Context) {
	response.OK(c, "Logged out successfully", nil)
}

// GetProfile returns the session user reconstructed from the token
func (h *AuthHandler) GetProfile(c *gin.Context) {
	user := middleware.SessionUser(c)
	if user == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	response.OK(c, "Profile retrieved successfully", user)
}
