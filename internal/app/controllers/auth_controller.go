package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/srkad/placement-portal/internal/app/models/dto"
	"github.com/srkad/placement-portal/internal/app/services"
	"github.com/srkad/placement-portal/internal/middleware"
)

// AuthController handles account registration and login endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register creates a portal account
// @Summary Register an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterUserRequest true "Account details"
// @Success 201 {object} dto.RegisterUserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Name, email, and password are required"))
		return
	}

	user, err := c.authService.Register(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterUserResponse{
		Message: "Account created successfully",
		UserID:  user.ID,
	})
}

// Login checks credentials
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Email and password are required"))
		return
	}

	user, err := c.authService.Login(ctx, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User: dto.LoginUser{
			ID:      user.ID,
			Name:    user.Name,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		},
	})
}
