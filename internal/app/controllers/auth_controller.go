package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rushiiaher/CivilPath-sub000/internal/app/models/dto"
	"github.com/rushiiaher/CivilPath-sub000/internal/app/services"
	"github.com/rushiiaher/CivilPath-sub000/internal/middleware"
)

// AuthController handles admin login and account creation
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login handles admin login
// @Summary Admin login
// @Description Verifies the admin credentials and returns a signed token valid for 24 hours
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.LoginResponse "Login successful"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 429 {object} dto.ErrorResponse "Too many login attempts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resp, err := c.authService.Login(ctx, &req, ctx.ClientIP())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// CreateAdmin creates the configured admin account
// @Summary Create the admin account
// @Description Inserts the admin account from server configuration. Fails with 409 when it already exists.
// @Tags auth
// @Produce json
// @Success 201 {object} dto.CreateAdminResponse "Admin user created"
// @Failure 400 {object} dto.ErrorResponse "Admin password is not configured"
// @Failure 409 {object} dto.ErrorResponse "Admin user already exists"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /auth/create-admin [post]
func (c *AuthController) CreateAdmin(ctx *gin.Context) {
	admin, err := c.authService.CreateAdmin(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateAdminResponse{
		Message: "Admin user created successfully",
		User:    dto.AdminUser{ID: admin.ID, Username: admin.Username},
	})
}

// Me returns the identity carried by the token
// @Summary Current admin
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.AdminUser
// @Failure 401 {object} dto.ErrorResponse "Access token required"
// @Router /auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	claims, ok := middleware.RequireClaims(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, dto.AdminUser{ID: claims.ID, Username: claims.Username})
}
