package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/repositories"
	"github.com/teachteam/backend/internal/config"
	"github.com/teachteam/backend/internal/pkg/apperrors"
	"github.com/teachteam/backend/internal/pkg/auth"
	"github.com/teachteam/backend/internal/pkg/logger"
)

// CreateDefaultData ensures the admin account and the semester's course
// catalogue exist. Safe to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	adminRepo := repositories.NewAdminRepository(dbPool)
	courseRepo := repositories.NewCourseRepository(dbPool)

	var finalErr error

	if err := ensureDefaultAdmin(ctx, adminRepo, cfg); err != nil {
		logger.Error().Err(err).Msg("Error creating default admin")
		finalErr = errors.Join(finalErr, err)
	}

	defaultCourses := []*models.Course{
		{Code: "COSC2758", Name: "Full Stack Development", Semester: "2025S1"},
		{Code: "COSC2408", Name: "Programming Project", Semester: "2025S1"},
		{Code: "COSC1107", Name: "Computing Theory", Semester: "2025S1"},
		{Code: "COSC2626", Name: "Cloud Computing", Semester: "2025S1"},
	}
	for _, course := range defaultCourses {
		if err := courseRepo.Create(ctx, course); err != nil &&
			!errors.Is(err, apperrors.ErrCourseCodeExists) {
			logger.Error().Err(err).Str("code", course.Code).Msg("Error creating default course")
			finalErr = errors.Join(finalErr, err)
		}
	}

	return finalErr
}

// ensureDefaultAdmin creates the configured admin account when no admin
// exists yet
func ensureDefaultAdmin(ctx context.Context, adminRepo *repositories.AdminRepository, cfg *config.Config) error {
	count, err := adminRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	if cfg.Seed.AdminPassword == "" {
		logger.Warn().Msg("No admin accounts exist and no seed admin password configured")
		return nil
	}

	hashed, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}
	admin := &models.Admin{Username: cfg.Seed.AdminUsername, Password: hashed}
	if err := adminRepo.Create(ctx, admin); err != nil {
		return err
	}
	logger.Info().Str("username", admin.Username).Msg("Default admin account created")
	return nil
}
