package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// ErrorCode represents standardized error codes
type ErrorCode string

// Standard error codes for the application
const (
	// Authentication errors
	ErrorCodeInvalidCredentials ErrorCode = "AUTH_001"
	ErrorCodeInvalidToken       ErrorCode = "AUTH_002"
	ErrorCodeExpiredToken       ErrorCode = "AUTH_003"
	ErrorCodeUnauthorized       ErrorCode = "AUTH_004"
	ErrorCodeForbidden          ErrorCode = "AUTH_005"

	// Resource errors
	ErrorCodeResourceNotFound      ErrorCode = "RES_001"
	ErrorCodeResourceAlreadyExists ErrorCode = "RES_002"

	// Validation errors
	ErrorCodeValidationFailed ErrorCode = "VAL_001"

	// Server errors
	ErrorCodeInternalServer ErrorCode = "SRV_001"
)

// FieldError describes a single failed validation constraint.
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Message string `json:"message" example:"email must be a valid email address"`
}

// ErrorResponse represents the standard error response structure.
// Every failed request carries a human-readable detail message.
type ErrorResponse struct {
	Detail string       `json:"detail" example:"Academic institution not found"`
	Code   ErrorCode    `json:"code,omitempty" example:"RES_001"`
	Fields []FieldError `json:"fields,omitempty"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(code ErrorCode, detail string) *ErrorResponse {
	return &ErrorResponse{
		Detail: detail,
		Code:   code,
	}
}

// WithField appends field-level detail to the error
func (e *ErrorResponse) WithField(field, message string) *ErrorResponse {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
	return e
}

// NewValidationErrorResponse builds an error response from a binding error,
// expanding validator constraint failures into field-level entries.
func NewValidationErrorResponse(err error) *ErrorResponse {
	resp := NewErrorResponse(ErrorCodeValidationFailed, "Request validation failed")

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp = resp.WithField(fe.Field(), formatFieldError(fe))
		}
		return resp
	}

	resp.Detail = "Invalid request body"
	return resp
}

// formatFieldError creates a human-readable validation error message
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
