package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID                    int64     `json:"id" db:"id"`
	Name                  string    `json:"name" db:"name"`
	EnrollmentDate        time.Time `json:"enrollment_date" db:"enrollment_date"`
	AcademicInstitutionID int64     `json:"academic_institution_id" db:"academic_institution_id"`

	// Relation (populated when needed)
	AcademicInstitution *AcademicInstitution `json:"academic_institution,omitempty"`
}
