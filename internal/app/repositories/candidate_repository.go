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

// CandidateRepository handles database operations for candidate profiles
type CandidateRepository struct {
	pool *pgxpool.Pool
}

// NewCandidateRepository creates a new candidate repository
func NewCandidateRepository(pool *pgxpool.Pool) *CandidateRepository {
	return &CandidateRepository{pool: pool}
}

const candidateJoinColumns = `
	c.id, c.previous_roles, c.availability, c.skills, c.academic_credentials,
	u.id, u.email, u.first_name, u.last_name, u.role, u.is_blocked, u.created_at`

func scanCandidateWithUser(row pgx.Row) (*models.Candidate, error) {
	var candidate models.Candidate
	var user models.User
	err := row.Scan(
		&candidate.ID, &candidate.PreviousRoles, &candidate.Availability,
		&candidate.Skills, &candidate.AcademicCredentials,
		&user.ID, &user.Email, &user.FirstName, &user.LastName,
		&user.Role, &user.IsBlocked, &user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	candidate.User = &user
	return &candidate, nil
}

// Create attaches a candidate profile to an existing user
func (r *CandidateRepository) Create(ctx context.Context, candidate *models.Candidate) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO candidates (id, previous_roles, availability, skills, academic_credentials)
		VALUES ($1, $2, $3, $4, $5)`,
		candidate.ID, candidate.PreviousRoles, candidate.Availability,
		candidate.Skills, candidate.AcademicCredentials)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewConflictError("Candidate already exists")
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error creating candidate: %w", err)
	}
	return nil
}

// GetByID retrieves a candidate by ID with its user attached
func (r *CandidateRepository) GetByID(ctx context.Context, id int64) (*models.Candidate, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+candidateJoinColumns+`
		FROM candidates c
		JOIN users u ON u.id = c.id
		WHERE c.id = $1`, id)
	candidate, err := scanCandidateWithUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCandidateNotFound
		}
		return nil, fmt.Errorf("error retrieving candidate: %w", err)
	}
	return candidate, nil
}

// GetAll retrieves all candidates with their users attached
func (r *CandidateRepository) GetAll(ctx context.Context) ([]*models.Candidate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+candidateJoinColumns+`
		FROM candidates c
		JOIN users u ON u.id = c.id
		ORDER BY c.id`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving candidates: %w", err)
	}
	defer rows.Close()

	var candidates []*models.Candidate
	for rows.Next() {
		candidate, err := scanCandidateWithUser(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning candidate: %w", err)
		}
		candidates = append(candidates, candidate)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return candidates, nil
}

// Update updates the profile fields of an existing candidate
func (r *CandidateRepository) Update(ctx context.Context, candidate *models.Candidate) error {
	cmdTag, err := r.pool.Exec(ctx, `
		UPDATE candidates
		SET previous_roles = $1, availability = $2, skills = $3, academic_credentials = $4
		WHERE id = $5`,
		candidate.PreviousRoles, candidate.Availability, candidate.Skills,
		candidate.AcademicCredentials, candidate.ID)
	if err != nil {
		return fmt.Errorf("error updating candidate: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCandidateNotFound
	}
	return nil
}

// Delete deletes a candidate profile; applications, selections and
// comments go with it via ON DELETE CASCADE.
func (r *CandidateRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting candidate: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCandidateNotFound
	}
	return nil
}

// Exists reports whether a candidate row exists
func (r *CandidateRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM candidates WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking candidate existence: %w", err)
	}
	return exists, nil
}
