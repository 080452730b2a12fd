package dto

import "github.com/tolga/acadapi/internal/app/models"

// CreateUserRequest represents user creation data
type CreateUserRequest struct {
	Email       string  `json:"email" binding:"required,email,max=255"`
	Password    string  `json:"password" binding:"required,min=8,max=40"`
	FullName    *string `json:"full_name,omitempty" binding:"omitempty,max=255"`
	IsActive    *bool   `json:"is_active,omitempty"`
	IsSuperuser bool    `json:"is_superuser,omitempty"`
}

// UpdatePasswordRequest represents a self-service password change
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required,min=8,max=40"`
	NewPassword     string `json:"new_password" binding:"required,min=8,max=40"`
}

// UserResponse represents the public projection of a user. The hashed
// password never leaves the service.
type UserResponse struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	IsActive    bool    `json:"is_active"`
	IsSuperuser bool    `json:"is_superuser"`
	FullName    *string `json:"full_name,omitempty"`
}

// UserListResponse represents a page of users with the unpaginated total
type UserListResponse struct {
	Data  []UserResponse `json:"data"`
	Count int64          `json:"count"`
}

// NewUserResponse converts a user model to its public projection
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		IsActive:    user.IsActive,
		IsSuperuser: user.IsSuperuser,
		FullName:    user.FullName,
	}
}
