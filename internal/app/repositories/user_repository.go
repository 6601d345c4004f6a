package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/db"
	"github.com/teachteam/backend/internal/pkg/apperrors"
	"github.com/teachteam/backend/internal/pkg/dberrors"
)

// UserRepository handles database operations for users
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

const userColumns = "id, email, password, first_name, last_name, role, is_blocked, created_at"

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.FirstName,
		&user.LastName,
		&user.Role,
		&user.IsBlocked,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a user and its matching profile row in one transaction.
// The profile table (candidates or lecturers) shares the user's primary
// key and starts out empty.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO users (email, password, first_name, last_name, role)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id, is_blocked, created_at`,
			user.Email, user.Password, user.FirstName, user.LastName, user.Role,
		).Scan(&user.ID, &user.IsBlocked, &user.CreatedAt)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrEmailAlreadyInUse
			}
			return fmt.Errorf("error creating user: %w", err)
		}

		switch user.Role {
		case models.RoleCandidate:
			if _, err := tx.Exec(ctx, `INSERT INTO candidates (id) VALUES ($1)`, user.ID); err != nil {
				return fmt.Errorf("error creating candidate profile: %w", err)
			}
			user.Candidate = &models.Candidate{ID: user.ID}
		case models.RoleLecturer:
			if _, err := tx.Exec(ctx, `INSERT INTO lecturers (id) VALUES ($1)`, user.ID); err != nil {
				return fmt.Errorf("error creating lecturer profile: %w", err)
			}
			user.Lecturer = &models.Lecturer{ID: user.ID}
		}
		return nil
	})
}

// GetByID retrieves a user by ID with its profile attached
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	if err := r.attachProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByEmail retrieves a user by email with its profile attached
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user by email: %w", err)
	}

	if err := r.attachProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetAll retrieves all users with their profiles attached
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT u.id, u.email, u.password, u.first_name, u.last_name, u.role, u.is_blocked, u.created_at,
		       c.previous_roles, c.availability, c.skills, c.academic_credentials,
		       l.id IS NOT NULL
		FROM users u
		LEFT JOIN candidates c ON c.id = u.id
		LEFT JOIN lecturers l ON l.id = u.id
		ORDER BY u.id`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		var previousRoles, skills, academicCredentials *string
		var availability *models.Availability
		var isLecturer bool
		if err := rows.Scan(
			&user.ID, &user.Email, &user.Password, &user.FirstName, &user.LastName,
			&user.Role, &user.IsBlocked, &user.CreatedAt,
			&previousRoles, &availability, &skills, &academicCredentials,
			&isLecturer,
		); err != nil {
			return nil, fmt.Errorf("error scanning user: %w", err)
		}

		if user.Role == models.RoleCandidate {
			user.Candidate = &models.Candidate{
				ID:                  user.ID,
				PreviousRoles:       previousRoles,
				Availability:        availability,
				Skills:              skills,
				AcademicCredentials: academicCredentials,
			}
		}
		if isLecturer {
			user.Lecturer = &models.Lecturer{ID: user.ID}
		}
		users = append(users, &user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// Update updates an existing user row
func (r *UserRepository) Update(ctx context.Context, user *models.User) error {
	cmdTag, err := r.pool.Exec(ctx, `
		UPDATE users
		SET email = $1, password = $2, first_name = $3, last_name = $4, role = $5
		WHERE id = $6`,
		user.Email, user.Password, user.FirstName, user.LastName, user.Role, user.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrEmailAlreadyInUse
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// SetBlocked flips the blocked flag on a user account
func (r *UserRepository) SetBlocked(ctx context.Context, id int64, blocked bool) error {
	cmdTag, err := r.pool.Exec(ctx, `UPDATE users SET is_blocked = $1 WHERE id = $2`, blocked, id)
	if err != nil {
		return fmt.Errorf("error updating blocked flag: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// Delete deletes a user; profile rows and dependents go with it via
// ON DELETE CASCADE.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting user: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// attachProfile loads the candidate or lecturer profile matching the
// user's role.
func (r *UserRepository) attachProfile(ctx context.Context, user *models.User) error {
	switch user.Role {
	case models.RoleCandidate:
		var candidate models.Candidate
		err := r.pool.QueryRow(ctx, `
			SELECT id, previous_roles, availability, skills, academic_credentials
			FROM candidates WHERE id = $1`, user.ID,
		).Scan(&candidate.ID, &candidate.PreviousRoles, &candidate.Availability,
			&candidate.Skills, &candidate.AcademicCredentials)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("error retrieving candidate profile: %w", err)
		}
		if err == nil {
			user.Candidate = &candidate
		}
	case models.RoleLecturer:
		var lecturer models.Lecturer
		err := r.pool.QueryRow(ctx, `SELECT id FROM lecturers WHERE id = $1`, user.ID).Scan(&lecturer.ID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("error retrieving lecturer profile: %w", err)
		}
		if err == nil {
			user.Lecturer = &lecturer
		}
	}
	return nil
}
