package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tolga/acadapi/internal/app/models/dto"
	"github.com/tolga/acadapi/internal/pkg/apperrors"
)

// HandleAPIError maps domain errors to HTTP responses. Controllers hand any
// service error here instead of switching on error types themselves.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "User not found"))
	case errors.Is(err, apperrors.ErrInstitutionNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Academic institution not found"))
	case errors.Is(err, apperrors.ErrStudentNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Student not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(dto.ErrorCodeResourceNotFound, "Resource not found"))
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict,
			dto.NewErrorResponse(dto.ErrorCodeResourceAlreadyExists, "The user with this email already exists in the system"))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict,
			dto.NewErrorResponse(dto.ErrorCodeResourceAlreadyExists, "Conflict"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeInvalidCredentials, "Incorrect email or password"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeExpiredToken, "Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrorCodeInvalidToken, "Invalid token"))
	case errors.Is(err, apperrors.ErrAccountDisabled):
		c.JSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.ErrorCodeForbidden, "Inactive user"))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden,
			dto.NewErrorResponse(dto.ErrorCodeForbidden, "Permission denied"))
	case errors.Is(err, apperrors.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Incorrect password"))
	case errors.Is(err, apperrors.ErrSamePassword):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "New password cannot be the same as the current one"))
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrorCodeValidationFailed, "Validation failed"))
	default:
		c.JSON(http.StatusInternalServerError,
			dto.NewErrorResponse(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}
