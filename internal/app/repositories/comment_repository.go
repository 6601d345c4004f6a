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

// CommentRepository handles lecturer comments on candidates
type CommentRepository struct {
	pool *pgxpool.Pool
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

// Create inserts a new comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO comments (content, candidate_id, lecturer_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		comment.Content, comment.CandidateID, comment.LecturerID,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error creating comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	var comment models.Comment
	err := r.pool.QueryRow(ctx, `
		SELECT id, content, candidate_id, lecturer_id, created_at
		FROM comments WHERE id = $1`, id,
	).Scan(&comment.ID, &comment.Content, &comment.CandidateID, &comment.LecturerID, &comment.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCommentNotFound
		}
		return nil, fmt.Errorf("error retrieving comment: %w", err)
	}
	return &comment, nil
}

// GetByCandidate retrieves the comments on one candidate, newest first
func (r *CommentRepository) GetByCandidate(ctx context.Context, candidateID int64) ([]*models.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cm.id, cm.content, cm.candidate_id, cm.lecturer_id, cm.created_at,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.is_blocked, u.created_at
		FROM comments cm
		JOIN users u ON u.id = cm.lecturer_id
		WHERE cm.candidate_id = $1
		ORDER BY cm.created_at DESC`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving candidate comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		var user models.User
		if err := rows.Scan(
			&comment.ID, &comment.Content, &comment.CandidateID, &comment.LecturerID, &comment.CreatedAt,
			&user.ID, &user.Email, &user.FirstName, &user.LastName,
			&user.Role, &user.IsBlocked, &user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning comment: %w", err)
		}
		comment.Lecturer = &models.Lecturer{ID: user.ID, User: &user}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

// GetByLecturer retrieves the comments one lecturer wrote, newest first
func (r *CommentRepository) GetByLecturer(ctx context.Context, lecturerID int64) ([]*models.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT cm.id, cm.content, cm.candidate_id, cm.lecturer_id, cm.created_at,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.is_blocked, u.created_at
		FROM comments cm
		JOIN users u ON u.id = cm.candidate_id
		WHERE cm.lecturer_id = $1
		ORDER BY cm.created_at DESC`, lecturerID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecturer comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var comment models.Comment
		var user models.User
		if err := rows.Scan(
			&comment.ID, &comment.Content, &comment.CandidateID, &comment.LecturerID, &comment.CreatedAt,
			&user.ID, &user.Email, &user.FirstName, &user.LastName,
			&user.Role, &user.IsBlocked, &user.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("error scanning comment: %w", err)
		}
		comment.Candidate = &models.Candidate{ID: user.ID, User: &user}
		comments = append(comments, &comment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return comments, nil
}

// Update rewrites a comment's content
func (r *CommentRepository) Update(ctx context.Context, id int64, content string) error {
	cmdTag, err := r.pool.Exec(ctx, `UPDATE comments SET content = $1 WHERE id = $2`, content, id)
	if err != nil {
		return fmt.Errorf("error updating comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}

// Delete removes a comment
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting comment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCommentNotFound
	}
	return nil
}
