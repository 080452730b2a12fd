package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tolga/acadapi/internal/app/models"
	"github.com/tolga/acadapi/internal/app/models/dto"
	"github.com/tolga/acadapi/internal/app/repositories"
	"github.com/tolga/acadapi/internal/pkg/apperrors"
	"github.com/tolga/acadapi/internal/pkg/auth"
)

// UserService defines the interface for user operations
type UserService interface {
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int64, error)
	UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
}

// userServiceImpl implements UserService
type userServiceImpl struct {
	userRepo repositories.IUserRepository
	hasher   *auth.PasswordHasher
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, hasher *auth.PasswordHasher, logger zerolog.Logger) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// CreateUser creates a new user. The plaintext password is replaced by its
// hash exactly once, before the row is persisted; the pre-check on the email
// is backed by the unique index for racing inserts.
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	exists, err := s.userRepo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashedPassword, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	user := &models.User{
		Email:          req.Email,
		HashedPassword: hashedPassword,
		FullName:       req.FullName,
		IsActive:       isActive,
		IsSuperuser:    req.IsSuperuser,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", user.ID).Msg("User created")
	return user, nil
}

// GetUserByID retrieves a user by ID
func (s *userServiceImpl) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers retrieves a page of users together with the unpaginated total
func (s *userServiceImpl) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int64, error) {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	users, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	return users, count, nil
}

// UpdatePassword changes the caller's password. The account must be active,
// the current password must verify against the stored hash and the new
// password must differ from it; any failure leaves the stored hash unchanged.
func (s *userServiceImpl) UpdatePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !user.IsActive {
		return apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.HashedPassword, currentPassword) {
		return apperrors.ErrPasswordMismatch
	}

	if currentPassword == newPassword {
		return apperrors.ErrSamePassword
	}

	hashedPassword, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	if err := s.userRepo.UpdatePassword(ctx, userID, hashedPassword); err != nil {
		return err
	}

	s.logger.Info().Int64("userID", userID).Msg("Password updated")
	return nil
}
