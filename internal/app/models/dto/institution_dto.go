package dto

import (
	"time"

	"github.com/tolga/acadapi/internal/app/models"
)

// CreateInstitutionRequest represents institution creation data
type CreateInstitutionRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// InstitutionResponse represents basic institution information
type InstitutionResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// InstitutionWithStudentsResponse nests the institution's students. The
// student entries never nest the institution back, so serialization cannot
// cycle.
type InstitutionWithStudentsResponse struct {
	InstitutionResponse
	Students []StudentResponse `json:"students"`
}

// InstitutionListResponse represents a page of institutions
type InstitutionListResponse struct {
	Data  []InstitutionResponse `json:"data"`
	Count int64                 `json:"count"`
}

// NewInstitutionResponse converts an institution model to its public projection
func NewInstitutionResponse(institution *models.AcademicInstitution) InstitutionResponse {
	return InstitutionResponse{
		ID:        institution.ID,
		Name:      institution.Name,
		CreatedAt: institution.CreatedAt,
	}
}

// NewInstitutionWithStudentsResponse projects an institution together with
// its student list.
func NewInstitutionWithStudentsResponse(institution *models.AcademicInstitution) InstitutionWithStudentsResponse {
	students := make([]StudentResponse, 0, len(institution.Students))
	for _, student := range institution.Students {
		students = append(students, NewStudentResponse(student))
	}
	return InstitutionWithStudentsResponse{
		InstitutionResponse: NewInstitutionResponse(institution),
		Students:            students,
	}
}
