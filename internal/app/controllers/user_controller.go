package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tolga/acadapi/internal/app/models/dto"
	"github.com/tolga/acadapi/internal/app/services"
	"github.com/tolga/acadapi/internal/middleware"
	"github.com/tolga/acadapi/internal/pkg/helpers"
)

// UserController handles user-related operations
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// CreateUser handles user creation
// @Summary Create a new user
// @Description Creates a new user account; the password is hashed before storage
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateUserRequest true "User information"
// @Success 201 {object} dto.UserResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Superuser privileges required"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /users [post]
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	user, err := c.userService.CreateUser(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewUserResponse(user))
}

// ListUsers retrieves a page of users
// @Summary List users
// @Description Retrieves users with offset/limit pagination
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param offset query int false "Rows to skip" default(0) minimum(0)
// @Param limit query int false "Page size" default(100) maximum(100)
// @Success 200 {object} dto.UserListResponse "Users retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Superuser privileges required"
// @Router /users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	offset, limit := helpers.ParseOffsetLimit(ctx)

	users, count, err := c.userService.ListUsers(ctx.Request.Context(), offset, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	data := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		data = append(data, dto.NewUserResponse(user))
	}

	ctx.JSON(http.StatusOK, dto.UserListResponse{Data: data, Count: count})
}

// GetMe returns the authenticated user's profile
// @Summary Get current user
// @Description Retrieves the profile of the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse "Profile retrieved successfully"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Failure 403 {object} dto.ErrorResponse "Inactive user"
// @Router /users/me [get]
func (c *UserController) GetMe(ctx *gin.Context) {
	userID, exists := middleware.CurrentUserID(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	user, err := c.userService.GetUserByID(ctx.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !user.IsActive {
		ctx.JSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.ErrorCodeForbidden, "Inactive user"))
		return
	}

	ctx.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// UpdatePassword changes the authenticated user's password
// @Summary Update own password
// @Description Verifies the current password and stores a new hash
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdatePasswordRequest true "Password change"
// @Success 200 {object} dto.MessageResponse "Password updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Incorrect password or no-op change"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized - Invalid or missing token"
// @Router /users/me/password [patch]
func (c *UserController) UpdatePassword(ctx *gin.Context) {
	userID, exists := middleware.CurrentUserID(ctx)
	if !exists {
		ctx.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeUnauthorized, "Authentication required"))
		return
	}

	var req dto.UpdatePasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(err))
		return
	}

	if err := c.userService.UpdatePassword(ctx.Request.Context(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}
