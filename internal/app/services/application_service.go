package services

import (
	"context"

	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/pkg/apperrors"
)

type applicationStore interface {
	Create(ctx context.Context, application *models.AppliedCourse) error
	GetAll(ctx context.Context) ([]*models.AppliedCourse, error)
	Get(ctx context.Context, candidateID, courseID int64, role models.CourseRole) (*models.AppliedCourse, error)
	GetByCandidate(ctx context.Context, candidateID int64) ([]*models.AppliedCourse, error)
	GetByCourse(ctx context.Context, courseID int64) ([]*models.AppliedCourse, error)
	Exists(ctx context.Context, candidateID, courseID int64, role models.CourseRole) (bool, error)
	Delete(ctx context.Context, candidateID, courseID int64, role models.CourseRole) error
	Replace(ctx context.Context, candidateID int64, oldKey, newKey dto.ApplicationKey) error
}

// ApplicationService handles candidate applications to courses
type ApplicationService struct {
	appliedRepo applicationStore
}

// NewApplicationService creates a new application service instance
func NewApplicationService(appliedRepo applicationStore) *ApplicationService {
	return &ApplicationService{appliedRepo: appliedRepo}
}

// Create records a new application. A candidate holds at most one
// application per course and role.
func (s *ApplicationService) Create(ctx context.Context, req *dto.CreateAppliedCourseRequest) (*models.AppliedCourse, error) {
	exists, err := s.appliedRepo.Exists(ctx, req.CandidateID, req.CourseID, req.Role)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrApplicationExists
	}

	application := &models.AppliedCourse{
		CandidateID: req.CandidateID,
		CourseID:    req.CourseID,
		Role:        req.Role,
	}
	if err := s.appliedRepo.Create(ctx, application); err != nil {
		return nil, err
	}
	return application, nil
}

// GetAll retrieves every application
func (s *ApplicationService) GetAll(ctx context.Context) ([]*models.AppliedCourse, error) {
	return s.appliedRepo.GetAll(ctx)
}

// Get retrieves one application by its composite key
func (s *ApplicationService) Get(ctx context.Context, candidateID, courseID int64, role models.CourseRole) (*models.AppliedCourse, error) {
	return s.appliedRepo.Get(ctx, candidateID, courseID, role)
}

// GetByCandidate retrieves one candidate's applications
func (s *ApplicationService) GetByCandidate(ctx context.Context, candidateID int64) ([]*models.AppliedCourse, error) {
	return s.appliedRepo.GetByCandidate(ctx, candidateID)
}

// GetByCourse retrieves the applications submitted to one course
func (s *ApplicationService) GetByCourse(ctx context.Context, courseID int64) ([]*models.AppliedCourse, error) {
	return s.appliedRepo.GetByCourse(ctx, courseID)
}

// Replace swaps one application for another in a single transaction.
// Replacing an application with an identical key leaves it in place.
func (s *ApplicationService) Replace(ctx context.Context, req *dto.ReplaceAppliedCourseRequest) error {
	if req.Old == req.New {
		return nil
	}
	return s.appliedRepo.Replace(ctx, req.CandidateID, req.Old, req.New)
}

// Delete withdraws an application
func (s *ApplicationService) Delete(ctx context.Context, candidateID, courseID int64, role models.CourseRole) error {
	return s.appliedRepo.Delete(ctx, candidateID, courseID, role)
}
