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

// SelectedCandidateRepository handles lecturer selections and the
// aggregates built on top of them
type SelectedCandidateRepository struct {
	pool *pgxpool.Pool
}

// NewSelectedCandidateRepository creates a new selection repository
func NewSelectedCandidateRepository(pool *pgxpool.Pool) *SelectedCandidateRepository {
	return &SelectedCandidateRepository{pool: pool}
}

const selectionSelect = `
	SELECT sc.lecturer_id, sc.candidate_id, sc.preference_ranking,
	       cd.previous_roles, cd.availability, cd.skills, cd.academic_credentials,
	       u.id, u.email, u.first_name, u.last_name, u.role, u.is_blocked, u.created_at
	FROM selected_candidates sc
	JOIN candidates cd ON cd.id = sc.candidate_id
	JOIN users u ON u.id = cd.id`

func collectSelections(rows pgx.Rows) ([]*models.SelectedCandidate, error) {
	var selections []*models.SelectedCandidate
	for rows.Next() {
		var selection models.SelectedCandidate
		var candidate models.Candidate
		var user models.User
		if err := rows.Scan(
			&selection.LecturerID, &selection.CandidateID, &selection.PreferenceRanking,
			&candidate.PreviousRoles, &candidate.Availability, &candidate.Skills, &candidate.AcademicCredentials,
			&user.ID, &user.Email, &user.FirstName, &user.LastName,
			&user.Role, &user.IsBlocked, &user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning selection: %w", err)
		}
		candidate.ID = user.ID
		candidate.User = &user
		selection.Candidate = &candidate
		selections = append(selections, &selection)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return selections, nil
}

// Create inserts a new selection
func (r *SelectedCandidateRepository) Create(ctx context.Context, selection *models.SelectedCandidate) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO selected_candidates (lecturer_id, candidate_id, preference_ranking)
		VALUES ($1, $2, $3)`,
		selection.LecturerID, selection.CandidateID, selection.PreferenceRanking)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAlreadySelected
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error creating selection: %w", err)
	}
	return nil
}

// Get retrieves one selection by its composite key
func (r *SelectedCandidateRepository) Get(ctx context.Context, lecturerID, candidateID int64) (*models.SelectedCandidate, error) {
	var selection models.SelectedCandidate
	err := r.pool.QueryRow(ctx, `
		SELECT lecturer_id, candidate_id, preference_ranking
		FROM selected_candidates
		WHERE lecturer_id = $1 AND candidate_id = $2`,
		lecturerID, candidateID,
	).Scan(&selection.LecturerID, &selection.CandidateID, &selection.PreferenceRanking)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSelectionNotFound
		}
		return nil, fmt.Errorf("error retrieving selection: %w", err)
	}
	return &selection, nil
}

// GetAll retrieves all selections with candidates attached
func (r *SelectedCandidateRepository) GetAll(ctx context.Context) ([]*models.SelectedCandidate, error) {
	rows, err := r.pool.Query(ctx, selectionSelect+` ORDER BY sc.lecturer_id, sc.preference_ranking`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving selections: %w", err)
	}
	defer rows.Close()
	return collectSelections(rows)
}

// GetByLecturer retrieves one lecturer's selections ordered by rank
func (r *SelectedCandidateRepository) GetByLecturer(ctx context.Context, lecturerID int64) ([]*models.SelectedCandidate, error) {
	rows, err := r.pool.Query(ctx,
		selectionSelect+` WHERE sc.lecturer_id = $1 ORDER BY sc.preference_ranking`, lecturerID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecturer selections: %w", err)
	}
	defer rows.Close()
	return collectSelections(rows)
}

// GetByCandidate retrieves the selections naming one candidate
func (r *SelectedCandidateRepository) GetByCandidate(ctx context.Context, candidateID int64) ([]*models.SelectedCandidate, error) {
	rows, err := r.pool.Query(ctx,
		selectionSelect+` WHERE sc.candidate_id = $1 ORDER BY sc.lecturer_id`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving candidate selections: %w", err)
	}
	defer rows.Close()
	return collectSelections(rows)
}

// UpdateRanking moves a selection to a new rank. When another selection
// under the same lecturer already holds that rank, the two swap ranks in
// one transaction. Assigning the rank a selection already holds leaves
// everything unchanged.
func (r *SelectedCandidateRepository) UpdateRanking(ctx context.Context, lecturerID, candidateID int64, newRank int) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		var previousRank int
		err := tx.QueryRow(ctx, `
			SELECT preference_ranking FROM selected_candidates
			WHERE lecturer_id = $1 AND candidate_id = $2
			FOR UPDATE`,
			lecturerID, candidateID).Scan(&previousRank)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrSelectionNotFound
			}
			return fmt.Errorf("error retrieving selection: %w", err)
		}
		if previousRank == newRank {
			return nil
		}

		var holderID int64
		err = tx.QueryRow(ctx, `
			SELECT candidate_id FROM selected_candidates
			WHERE lecturer_id = $1 AND preference_ranking = $2 AND candidate_id <> $3
			FOR UPDATE`,
			lecturerID, newRank, candidateID).Scan(&holderID)
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("error retrieving rank holder: %w", err)
		}
		hasHolder := err == nil

		if hasHolder {
			if _, err := tx.Exec(ctx, `
				UPDATE selected_candidates SET preference_ranking = $1
				WHERE lecturer_id = $2 AND candidate_id = $3`,
				previousRank, lecturerID, holderID); err != nil {
				return fmt.Errorf("error moving rank holder: %w", err)
			}
		}
		if _, err := tx.Exec(ctx, `
			UPDATE selected_candidates SET preference_ranking = $1
			WHERE lecturer_id = $2 AND candidate_id = $3`,
			newRank, lecturerID, candidateID); err != nil {
			return fmt.Errorf("error updating selection rank: %w", err)
		}
		return nil
	})
}

// Delete removes a selection by its composite key
func (r *SelectedCandidateRepository) Delete(ctx context.Context, lecturerID, candidateID int64) error {
	cmdTag, err := r.pool.Exec(ctx, `
		DELETE FROM selected_candidates WHERE lecturer_id = $1 AND candidate_id = $2`,
		lecturerID, candidateID)
	if err != nil {
		return fmt.Errorf("error deleting selection: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSelectionNotFound
	}
	return nil
}

// SelectionCounts returns how many lecturers selected each candidate.
// Candidates nobody selected do not appear.
func (r *SelectedCandidateRepository) SelectionCounts(ctx context.Context) ([]*models.CandidateSelectionCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT candidate_id, COUNT(*) AS selected_count
		FROM selected_candidates
		GROUP BY candidate_id
		ORDER BY candidate_id`)
	if err != nil {
		return nil, fmt.Errorf("error counting selections: %w", err)
	}
	defer rows.Close()

	var counts []*models.CandidateSelectionCount
	for rows.Next() {
		var count models.CandidateSelectionCount
		if err := rows.Scan(&count.CandidateID, &count.SelectedCount); err != nil {
			return nil, fmt.Errorf("error scanning selection count: %w", err)
		}
		counts = append(counts, &count)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

// CandidatesSelectedForMoreThanNCourses returns candidates whose
// selections, attributed to the selecting lecturers' assigned courses,
// span more than n distinct courses.
func (r *SelectedCandidateRepository) CandidatesSelectedForMoreThanNCourses(ctx context.Context, n int) ([]*models.Candidate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cd.id, cd.previous_roles, cd.availability, cd.skills, cd.academic_credentials,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.is_blocked, u.created_at
		FROM candidates cd
		JOIN users u ON u.id = cd.id
		JOIN selected_candidates sc ON sc.candidate_id = cd.id
		JOIN lecturer_courses lc ON lc.lecturer_id = sc.lecturer_id
		GROUP BY cd.id, cd.previous_roles, cd.availability, cd.skills, cd.academic_credentials,
		         u.id, u.email, u.first_name, u.last_name, u.role, u.is_blocked, u.created_at
		HAVING COUNT(DISTINCT lc.course_id) > $1
		ORDER BY cd.id`, n)
	if err != nil {
		return nil, fmt.Errorf("error retrieving overselected candidates: %w", err)
	}
	defer rows.Close()
	return collectCandidates(rows)
}

// CandidatesWithNoSelections returns candidates no lecturer selected
func (r *SelectedCandidateRepository) CandidatesWithNoSelections(ctx context.Context) ([]*models.Candidate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cd.id, cd.previous_roles, cd.availability, cd.skills, cd.academic_credentials,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.is_blocked, u.created_at
		FROM candidates cd
		JOIN users u ON u.id = cd.id
		WHERE NOT EXISTS (SELECT 1 FROM selected_candidates sc WHERE sc.candidate_id = cd.id)
		ORDER BY cd.id`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving unselected candidates: %w", err)
	}
	defer rows.Close()
	return collectCandidates(rows)
}

// CandidatesChosenByCourse returns the distinct candidates selected by
// the lecturers assigned to the course.
func (r *SelectedCandidateRepository) CandidatesChosenByCourse(ctx context.Context, courseID int64) ([]*models.Candidate, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT cd.id, cd.previous_roles, cd.availability, cd.skills, cd.academic_credentials,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.is_blocked, u.created_at
		FROM candidates cd
		JOIN users u ON u.id = cd.id
		JOIN selected_candidates sc ON sc.candidate_id = cd.id
		JOIN lecturer_courses lc ON lc.lecturer_id = sc.lecturer_id
		WHERE lc.course_id = $1
		ORDER BY cd.id`, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course selections: %w", err)
	}
	defer rows.Close()
	return collectCandidates(rows)
}

func collectCandidates(rows pgx.Rows) ([]*models.Candidate, error) {
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
