package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tolga/acadapi/internal/app/models"
	"github.com/tolga/acadapi/internal/pkg/apperrors"
)

// IStudentRepository defines the interface for student-related database
// operations.
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	ListByInstitution(ctx context.Context, institutionID int64, offset, limit int) ([]*models.Student, error)
	CountByInstitution(ctx context.Context, institutionID int64) (int64, error)
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student and loads the store-generated fields back
// onto the model.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, academic_institution_id)
		VALUES ($1, $2)
		RETURNING id, enrollment_date
	`

	err := r.db.QueryRow(ctx, query, student.Name, student.AcademicInstitutionID).
		Scan(&student.ID, &student.EnrollmentDate)
	if err != nil {
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, name, enrollment_date, academic_institution_id
		FROM students
		WHERE id = $1
	`

	student := &models.Student{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&student.ID, &student.Name, &student.EnrollmentDate, &student.AcademicInstitutionID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// ListByInstitution retrieves a page of an institution's students ordered by id
func (r *StudentRepository) ListByInstitution(ctx context.Context, institutionID int64, offset, limit int) ([]*models.Student, error) {
	query := `
		SELECT id, name, enrollment_date, academic_institution_id
		FROM students
		WHERE academic_institution_id = $1
		ORDER BY id
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(ctx, query, institutionID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		if err := rows.Scan(
			&student.ID, &student.Name, &student.EnrollmentDate, &student.AcademicInstitutionID,
		); err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// CountByInstitution returns the total number of students in an institution
func (r *StudentRepository) CountByInstitution(ctx context.Context, institutionID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM students WHERE academic_institution_id = $1`,
		institutionID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return count, nil
}
