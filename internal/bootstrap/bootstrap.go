package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	appControllers "github.com/teachteam/backend/internal/app/controllers"
	appGraphql "github.com/teachteam/backend/internal/app/graphql"
	appMigrations "github.com/teachteam/backend/internal/app/migrations"
	appRepos "github.com/teachteam/backend/internal/app/repositories"
	appRoutes "github.com/teachteam/backend/internal/app/routes"
	appServices "github.com/teachteam/backend/internal/app/services"
	"github.com/teachteam/backend/internal/config"
	"github.com/teachteam/backend/internal/db"
	appMiddleware "github.com/teachteam/backend/internal/middleware"
	pkgAuth "github.com/teachteam/backend/internal/pkg/auth"
	"github.com/teachteam/backend/internal/pkg/logger"
	"github.com/teachteam/backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos                       *appRepos.Repositories
	Services                    *appServices.Services
	JWTService                  *pkgAuth.JWTService
	AuthMiddleware              *appMiddleware.AuthMiddleware
	UserController              *appControllers.UserController
	CandidateController         *appControllers.CandidateController
	LecturerController          *appControllers.LecturerController
	CourseController            *appControllers.CourseController
	LecturerCourseController    *appControllers.LecturerCourseController
	AppliedCourseController     *appControllers.AppliedCourseController
	SelectedCandidateController *appControllers.SelectedCandidateController
	CommentController           *appControllers.CommentController
	GraphQLHandler              gin.HandlerFunc
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	logger.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")

	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	logger.Info().Msg("Database connection successfully established.")

	logger.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		logger.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		logger.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg); err != nil {
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(dbPool)

	tokenExpiry, err := time.ParseDuration(cfg.JWT.TokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("invalid token expiry: %w", err)
	}
	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: tokenExpiry,
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.UserController = appControllers.NewUserController(deps.Services.Users, deps.Services.Auth)
	deps.CandidateController = appControllers.NewCandidateController(deps.Services.Candidates)
	deps.LecturerController = appControllers.NewLecturerController(deps.Services.Lecturers)
	deps.CourseController = appControllers.NewCourseController(deps.Services.Courses)
	deps.LecturerCourseController = appControllers.NewLecturerCourseController(deps.Services.Courses)
	deps.AppliedCourseController = appControllers.NewAppliedCourseController(deps.Services.Applications)
	deps.SelectedCandidateController = appControllers.NewSelectedCandidateController(deps.Services.Selections)
	deps.CommentController = appControllers.NewCommentController(deps.Services.Comments)

	schema, err := appGraphql.Schema(deps.Services)
	if err != nil {
		return nil, fmt.Errorf("failed to build admin schema: %w", err)
	}
	deps.GraphQLHandler = appGraphql.Handler(schema, deps.JWTService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		logger.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.UserController,
		deps.CandidateController,
		deps.LecturerController,
		deps.CourseController,
		deps.LecturerCourseController,
		deps.AppliedCourseController,
		deps.SelectedCandidateController,
		deps.CommentController,
		deps.GraphQLHandler,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
