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

// IInstitutionRepository defines the interface for institution-related
// database operations.
type IInstitutionRepository interface {
	Create(ctx context.Context, institution *models.AcademicInstitution) error
	GetByID(ctx context.Context, id int64) (*models.AcademicInstitution, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, offset, limit int) ([]*models.AcademicInstitution, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
}

// InstitutionRepository handles database operations for academic institutions
type InstitutionRepository struct {
	db *pgxpool.Pool
}

// NewInstitutionRepository creates a new institution repository
func NewInstitutionRepository(db *pgxpool.Pool) *InstitutionRepository {
	return &InstitutionRepository{
		db: db,
	}
}

// Create inserts a new institution and loads the store-generated fields
// back onto the model.
func (r *InstitutionRepository) Create(ctx context.Context, institution *models.AcademicInstitution) error {
	query := `
		INSERT INTO academic_institutions (name)
		VALUES ($1)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, institution.Name).Scan(&institution.ID, &institution.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating academic institution: %w", err)
	}

	return nil
}

// GetByID retrieves an institution by ID
func (r *InstitutionRepository) GetByID(ctx context.Context, id int64) (*models.AcademicInstitution, error) {
	query := `
		SELECT id, name, created_at
		FROM academic_institutions
		WHERE id = $1
	`

	institution := &models.AcademicInstitution{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&institution.ID, &institution.Name, &institution.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("error retrieving academic institution: %w", err)
	}

	return institution, nil
}

// Exists checks if an institution exists by ID
func (r *InstitutionRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM academic_institutions WHERE id = $1)`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking academic institution existence: %w", err)
	}

	return exists, nil
}

// List retrieves a page of institutions ordered by id
func (r *InstitutionRepository) List(ctx context.Context, offset, limit int) ([]*models.AcademicInstitution, error) {
	query := `
		SELECT id, name, created_at
		FROM academic_institutions
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing academic institutions: %w", err)
	}
	defer rows.Close()

	var institutions []*models.AcademicInstitution
	for rows.Next() {
		institution := &models.AcademicInstitution{}
		if err := rows.Scan(&institution.ID, &institution.Name, &institution.CreatedAt); err != nil {
			return nil, err
		}
		institutions = append(institutions, institution)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return institutions, nil
}

// Count returns the total number of institutions
func (r *InstitutionRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM academic_institutions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting academic institutions: %w", err)
	}

	return count, nil
}

// Delete removes an institution by ID. Student rows cascade at the store
// level (ON DELETE CASCADE on the foreign key).
func (r *InstitutionRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM academic_institutions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting academic institution: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrInstitutionNotFound
	}

	return nil
}
