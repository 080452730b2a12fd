package services

import (
	"context"

	"github.com/tolga/acadapi/internal/app/models"
	"github.com/tolga/acadapi/internal/app/repositories"
	"github.com/tolga/acadapi/internal/pkg/apperrors"
)

// StudentService defines the interface for student operations
type StudentService interface {
	CreateStudent(ctx context.Context, institutionID int64, name string) (*models.Student, error)
	GetStudentWithInstitution(ctx context.Context, institutionID, studentID int64) (*models.Student, error)
	ListStudents(ctx context.Context, institutionID int64, offset, limit int) ([]*models.Student, int64, error)
}

// studentServiceImpl implements StudentService
type studentServiceImpl struct {
	studentRepo     repositories.IStudentRepository
	institutionRepo repositories.IInstitutionRepository
}

// NewStudentService creates a new StudentService
func NewStudentService(studentRepo repositories.IStudentRepository, institutionRepo repositories.IInstitutionRepository) StudentService {
	return &studentServiceImpl{
		studentRepo:     studentRepo,
		institutionRepo: institutionRepo,
	}
}

// verifyInstitution fails with ErrInstitutionNotFound unless the parent exists
func (s *studentServiceImpl) verifyInstitution(ctx context.Context, institutionID int64) error {
	exists, err := s.institutionRepo.Exists(ctx, institutionID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrInstitutionNotFound
	}
	return nil
}

// CreateStudent creates a student under an institution. The parent is
// verified before the insert so a missing institution never produces a row.
func (s *studentServiceImpl) CreateStudent(ctx context.Context, institutionID int64, name string) (*models.Student, error) {
	if err := s.verifyInstitution(ctx, institutionID); err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:                  name,
		AcademicInstitutionID: institutionID,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetStudentWithInstitution retrieves a student under an institution with
// the parent projection attached. A student that belongs to a different
// institution is reported as not found.
func (s *studentServiceImpl) GetStudentWithInstitution(ctx context.Context, institutionID, studentID int64) (*models.Student, error) {
	institution, err := s.institutionRepo.GetByID(ctx, institutionID)
	if err != nil {
		return nil, err
	}

	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if student.AcademicInstitutionID != institution.ID {
		return nil, apperrors.ErrStudentNotFound
	}

	student.AcademicInstitution = institution
	return student, nil
}

// ListStudents retrieves a page of an institution's students together with
// the unpaginated total.
func (s *studentServiceImpl) ListStudents(ctx context.Context, institutionID int64, offset, limit int) ([]*models.Student, int64, error) {
	if err := s.verifyInstitution(ctx, institutionID); err != nil {
		return nil, 0, err
	}

	count, err := s.studentRepo.CountByInstitution(ctx, institutionID)
	if err != nil {
		return nil, 0, err
	}

	students, err := s.studentRepo.ListByInstitution(ctx, institutionID, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	return students, count, nil
}
