package seed

import (
	"context"
	"fmt"

	"github.com/tolga/acadapi/internal/app/models"
	"github.com/tolga/acadapi/internal/app/repositories"
	"github.com/tolga/acadapi/internal/config"
	"github.com/tolga/acadapi/internal/pkg/auth"
	"github.com/tolga/acadapi/internal/pkg/logger"
)

// SeedFirstSuperuser creates the initial superuser account on an empty
// database. If any user already exists nothing is done, so redeploys are
// safe.
func SeedFirstSuperuser(ctx context.Context, userRepo repositories.IUserRepository, cfg *config.Config) error {
	if cfg.Seed.FirstSuperuserEmail == "" || cfg.Seed.FirstSuperuserPassword == "" {
		logger.Warn().Msg("First superuser credentials not configured, skipping seed")
		return nil
	}

	count, err := userRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users during seed: %w", err)
	}
	if count > 0 {
		logger.Debug().Msg("Users already exist, skipping first superuser seed")
		return nil
	}

	hasher := auth.NewPasswordHasher(cfg.Security.BcryptCost)
	hashed, err := hasher.Hash(cfg.Seed.FirstSuperuserPassword)
	if err != nil {
		return fmt.Errorf("failed to hash first superuser password: %w", err)
	}

	user := &models.User{
		Email:          cfg.Seed.FirstSuperuserEmail,
		HashedPassword: hashed,
		IsActive:       true,
		IsSuperuser:    true,
	}
	if err := userRepo.Create(ctx, user); err != nil {
		return fmt.Errorf("failed to create first superuser: %w", err)
	}

	logger.Info().Str("email", user.Email).Msg("First superuser created")
	return nil
}
