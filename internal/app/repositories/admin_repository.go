package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/pkg/apperrors"
	"github.com/teachteam/backend/internal/pkg/dberrors"
)

// AdminRepository handles database operations for admin accounts
type AdminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(pool *pgxpool.Pool) *AdminRepository {
	return &AdminRepository{pool: pool}
}

// Create inserts a new admin account
func (r *AdminRepository) Create(ctx context.Context, admin *models.Admin) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO admins (username, password)
		VALUES ($1, $2)
		RETURNING id`,
		admin.Username, admin.Password,
	).Scan(&admin.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("Username already in use")
		}
		return fmt.Errorf("error creating admin: %w", err)
	}
	return nil
}

// GetByUsername retrieves an admin by username
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	err := r.pool.QueryRow(ctx, `
		SELECT id, username, password FROM admins WHERE username = $1`, username,
	).Scan(&admin.ID, &admin.Username, &admin.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		return nil, fmt.Errorf("error retrieving admin: %w", err)
	}
	return &admin, nil
}

// Count returns the number of admin accounts
func (r *AdminRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM admins`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting admins: %w", err)
	}
	return count, nil
}
