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

// LecturerRepository handles database operations for lecturer profiles
type LecturerRepository struct {
	pool *pgxpool.Pool
}

// NewLecturerRepository creates a new lecturer repository
func NewLecturerRepository(pool *pgxpool.Pool) *LecturerRepository {
	return &LecturerRepository{pool: pool}
}

// Create attaches a lecturer profile to an existing user
func (r *LecturerRepository) Create(ctx context.Context, lecturer *models.Lecturer) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO lecturers (id) VALUES ($1)`, lecturer.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("Lecturer already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating lecturer: %w", err)
	}
	return nil
}

// GetByID retrieves a lecturer by ID with its user attached
func (r *LecturerRepository) GetByID(ctx context.Context, id int64) (*models.Lecturer, error) {
	var lecturer models.Lecturer
	var user models.User
	err := r.pool.QueryRow(ctx, `
		SELECT l.id, u.id, u.email, u.first_name, u.last_name, u.role, u.is_blocked, u.created_at
		FROM lecturers l
		JOIN users u ON u.id = l.id
		WHERE l.id = $1`, id,
	).Scan(&lecturer.ID, &user.ID, &user.Email, &user.FirstName, &user.LastName,
		&user.Role, &user.IsBlocked, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrLecturerNotFound
		}
		return nil, fmt.Errorf("error retrieving lecturer: %w", err)
	}
	lecturer.User = &user
	return &lecturer, nil
}

// GetAll retrieves all lecturers with their users attached
func (r *LecturerRepository) GetAll(ctx context.Context) ([]*models.Lecturer, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT l.id, u.id, u.email, u.first_name, u.last_name, u.role, u.is_blocked, u.created_at
		FROM lecturers l
		JOIN users u ON u.id = l.id
		ORDER BY l.id`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecturers: %w", err)
	}
	defer rows.Close()

	var lecturers []*models.Lecturer
	for rows.Next() {
		var lecturer models.Lecturer
		var user models.User
		if err := rows.Scan(&lecturer.ID, &user.ID, &user.Email, &user.FirstName,
			&user.LastName, &user.Role, &user.IsBlocked, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning lecturer: %w", err)
		}
		lecturer.User = &user
		lecturers = append(lecturers, &lecturer)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return lecturers, nil
}

// Delete deletes a lecturer profile; assignments, selections and comments
// go with it via ON DELETE CASCADE.
func (r *LecturerRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM lecturers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting lecturer: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrLecturerNotFound
	}
	return nil
}

// Exists reports whether a lecturer row exists
func (r *LecturerRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM lecturers WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking lecturer existence: %w", err)
	}
	return exists, nil
}
