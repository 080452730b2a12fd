package dto

import (
	"time"

	"github.com/tolga/acadapi/internal/app/models"
)

// CreateStudentRequest represents student creation data. The parent
// institution id comes from the URL path, never from the body.
type CreateStudentRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// StudentResponse represents basic student information
type StudentResponse struct {
	ID                    int64     `json:"id"`
	Name                  string    `json:"name"`
	EnrollmentDate        time.Time `json:"enrollment_date"`
	AcademicInstitutionID int64     `json:"academic_institution_id"`
}

// StudentWithInstitutionResponse nests the parent institution. The
// institution entry never nests its students back.
type StudentWithInstitutionResponse struct {
	StudentResponse
	AcademicInstitution InstitutionResponse `json:"academic_institution"`
}

// StudentListResponse represents a page of students
type StudentListResponse struct {
	Data  []StudentResponse `json:"data"`
	Count int64             `json:"count"`
}

// NewStudentResponse converts a student model to its public projection
func NewStudentResponse(student *models.Student) StudentResponse {
	return StudentResponse{
		ID:                    student.ID,
		Name:                  student.Name,
		EnrollmentDate:        student.EnrollmentDate,
		AcademicInstitutionID: student.AcademicInstitutionID,
	}
}
