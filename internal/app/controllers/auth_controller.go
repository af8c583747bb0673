package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/akshayp/cetadvisor/internal/app/models/dto"
	"github.com/akshayp/cetadvisor/internal/app/services"
	"github.com/akshayp/cetadvisor/internal/middleware"
)

// AuthController handles admin authentication endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login handles admin login
// @Summary Admin login
// @Description Verifies admin credentials and returns a signed JWT
// @Tags admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Admin credentials"
// @Success 200 {object} dto.APIResponse{data=dto.LoginResponse} "Login successful"
// @Failure 400 {object} dto.APIResponse "Malformed request"
// @Failure 401 {object} dto.APIResponse "Invalid credentials"
// @Router /admin/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	resp, err := c.authService.Login(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
