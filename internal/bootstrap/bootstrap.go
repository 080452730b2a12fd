package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tolga/acadapi/internal/app/controllers"
	"github.com/tolga/acadapi/internal/app/migrations"
	"github.com/tolga/acadapi/internal/app/repositories"
	"github.com/tolga/acadapi/internal/app/routes"
	"github.com/tolga/acadapi/internal/app/services"
	"github.com/tolga/acadapi/internal/config"
	"github.com/tolga/acadapi/internal/db"
	"github.com/tolga/acadapi/internal/middleware"
	"github.com/tolga/acadapi/internal/pkg/auth"
	"github.com/tolga/acadapi/internal/pkg/logger"
	"github.com/tolga/acadapi/internal/seed"
)

// LoadConfigAndSetupLogger loads configuration and configures the global
// logger from it.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Pretty,
	})

	return cfg, nil
}

// SetupDatabase connects to PostgreSQL, applies pending migrations and seeds
// the first superuser on an empty database.
func SetupDatabase(ctx context.Context, cfg *config.Config) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(cfg.Migrations.Dir); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	userRepo := repositories.NewUserRepository(database.Pool)
	if err := seed.SeedFirstSuperuser(ctx, userRepo, cfg); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// Dependencies holds the wired application components
type Dependencies struct {
	AuthController        *controllers.AuthController
	UserController        *controllers.UserController
	InstitutionController *controllers.InstitutionController
	StudentController     *controllers.StudentController
	AuthMiddleware        *middleware.AuthMiddleware
}

// BuildDependencies wires repositories, services and controllers together
func BuildDependencies(database *db.PostgresDB, cfg *config.Config) *Dependencies {
	repos := repositories.NewRepositories(database.Pool)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: cfg.AccessTokenExpiry(),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	hasher := auth.NewPasswordHasher(cfg.Security.BcryptCost)

	authService := services.NewAuthService(repos.UserRepository, jwtService, log.Logger)
	userService := services.NewUserService(repos.UserRepository, hasher, log.Logger)
	institutionService := services.NewInstitutionService(repos.InstitutionRepository, repos.StudentRepository)
	studentService := services.NewStudentService(repos.StudentRepository, repos.InstitutionRepository)

	return &Dependencies{
		AuthController:        controllers.NewAuthController(authService, log.Logger),
		UserController:        controllers.NewUserController(userService),
		InstitutionController: controllers.NewInstitutionController(institutionService),
		StudentController:     controllers.NewStudentController(studentService),
		AuthMiddleware:        middleware.NewAuthMiddleware(jwtService, repos.UserRepository),
	}
}

// SetupRouter creates the Gin engine and registers all routes
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	routes.SetupRouter(
		router,
		deps.AuthController,
		deps.UserController,
		deps.InstitutionController,
		deps.StudentController,
		deps.AuthMiddleware,
	)

	return router
}
