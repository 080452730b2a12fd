package services

import (
	"context"
	"strings"

	"github.com/tolga/acadapi/internal/app/models"
	"github.com/tolga/acadapi/internal/app/repositories"
	"github.com/tolga/acadapi/internal/pkg/apperrors"
)

// InstitutionService defines the interface for academic institution operations
type InstitutionService interface {
	CreateInstitution(ctx context.Context, name string) (*models.AcademicInstitution, error)
	GetInstitutionWithStudents(ctx context.Context, id int64) (*models.AcademicInstitution, error)
	ListInstitutions(ctx context.Context, offset, limit int) ([]*models.AcademicInstitution, int64, error)
	DeleteInstitution(ctx context.Context, id int64) error
}

// institutionServiceImpl implements InstitutionService
type institutionServiceImpl struct {
	institutionRepo repositories.IInstitutionRepository
	studentRepo     repositories.IStudentRepository
}

// NewInstitutionService creates a new InstitutionService
func NewInstitutionService(institutionRepo repositories.IInstitutionRepository, studentRepo repositories.IStudentRepository) InstitutionService {
	return &institutionServiceImpl{
		institutionRepo: institutionRepo,
		studentRepo:     studentRepo,
	}
}

// CreateInstitution creates a new academic institution
func (s *institutionServiceImpl) CreateInstitution(ctx context.Context, name string) (*models.AcademicInstitution, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.ErrValidationFailed
	}

	institution := &models.AcademicInstitution{Name: name}
	if err := s.institutionRepo.Create(ctx, institution); err != nil {
		return nil, err
	}

	return institution, nil
}

// GetInstitutionWithStudents retrieves an institution by ID with its
// students attached.
func (s *institutionServiceImpl) GetInstitutionWithStudents(ctx context.Context, id int64) (*models.AcademicInstitution, error) {
	institution, err := s.institutionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.studentRepo.CountByInstitution(ctx, id)
	if err != nil {
		return nil, err
	}

	students, err := s.studentRepo.ListByInstitution(ctx, id, 0, int(count))
	if err != nil {
		return nil, err
	}
	institution.Students = students

	return institution, nil
}

// ListInstitutions retrieves a page of institutions together with the
// unpaginated total.
func (s *institutionServiceImpl) ListInstitutions(ctx context.Context, offset, limit int) ([]*models.AcademicInstitution, int64, error) {
	count, err := s.institutionRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	institutions, err := s.institutionRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	return institutions, count, nil
}

// DeleteInstitution removes an institution; its students cascade at the
// store level.
func (s *institutionServiceImpl) DeleteInstitution(ctx context.Context, id int64) error {
	return s.institutionRepo.Delete(ctx, id)
}
