package services

import (
	"context"

	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/pkg/apperrors"
)

type commentStore interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	GetByCandidate(ctx context.Context, candidateID int64) ([]*models.Comment, error)
	GetByLecturer(ctx context.Context, lecturerID int64) ([]*models.Comment, error)
	Update(ctx context.Context, id int64, content string) error
	Delete(ctx context.Context, id int64) error
}

// CommentService handles lecturer comments on candidates
type CommentService struct {
	commentRepo commentStore
}

// NewCommentService creates a new comment service instance
func NewCommentService(commentRepo commentStore) *CommentService {
	return &CommentService{commentRepo: commentRepo}
}

// Create records a lecturer's comment on a candidate
func (s *CommentService) Create(ctx context.Context, req *dto.CreateCommentRequest) (*models.Comment, error) {
	comment := &models.Comment{
		Content:     req.Content,
		CandidateID: req.CandidateID,
		LecturerID:  req.LecturerID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// GetByCandidate retrieves the comments on one candidate, newest first
func (s *CommentService) GetByCandidate(ctx context.Context, candidateID int64) ([]*models.Comment, error) {
	return s.commentRepo.GetByCandidate(ctx, candidateID)
}

// GetByLecturer retrieves the comments one lecturer wrote, newest first
func (s *CommentService) GetByLecturer(ctx context.Context, lecturerID int64) ([]*models.Comment, error) {
	return s.commentRepo.GetByLecturer(ctx, lecturerID)
}

// Update rewrites a comment's text
func (s *CommentService) Update(ctx context.Context, id int64, req *dto.UpdateCommentRequest) (*models.Comment, error) {
	if req.Content == nil {
		return nil, apperrors.NewValidationError("content is required")
	}
	if err := s.commentRepo.Update(ctx, id, *req.Content); err != nil {
		return nil, err
	}
	return s.commentRepo.GetByID(ctx, id)
}

// Delete removes a comment
func (s *CommentService) Delete(ctx context.Context, id int64) error {
	return s.commentRepo.Delete(ctx, id)
}
