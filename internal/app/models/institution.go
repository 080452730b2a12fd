package models

import "time"

// AcademicInstitution defines the institution model based on the
// 'academic_institutions' table.
type AcademicInstitution struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// Relation (populated when needed)
	Students []*Student `json:"students,omitempty"`
}
