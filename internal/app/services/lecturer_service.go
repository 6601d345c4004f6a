package services

import (
	"context"

	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/models/dto"
)

type lecturerStore interface {
	Create(ctx context.Context, lecturer *models.Lecturer) error
	GetByID(ctx context.Context, id int64) (*models.Lecturer, error)
	GetAll(ctx context.Context) ([]*models.Lecturer, error)
	Delete(ctx context.Context, id int64) error
}

type applicantFilterer interface {
	FilterByLecturer(ctx context.Context, lecturerID int64, filter dto.FilterApplicantsQuery) ([]*models.AppliedCourse, error)
}

type lecturerCourseReader interface {
	GetByLecturer(ctx context.Context, lecturerID int64) ([]*models.Course, error)
}

// LecturerService handles lecturer profiles and the applicant search
type LecturerService struct {
	lecturerRepo lecturerStore
	appliedRepo  applicantFilterer
	courseRepo   lecturerCourseReader
}

// NewLecturerService creates a new lecturer service instance
func NewLecturerService(lecturerRepo lecturerStore, appliedRepo applicantFilterer, courseRepo lecturerCourseReader) *LecturerService {
	return &LecturerService{
		lecturerRepo: lecturerRepo,
		appliedRepo:  appliedRepo,
		courseRepo:   courseRepo,
	}
}

// Create attaches a lecturer profile to an existing user
func (s *LecturerService) Create(ctx context.Context, req *dto.CreateLecturerRequest) (*models.Lecturer, error) {
	lecturer := &models.Lecturer{ID: req.UserID}
	if err := s.lecturerRepo.Create(ctx, lecturer); err != nil {
		return nil, err
	}
	return s.lecturerRepo.GetByID(ctx, lecturer.ID)
}

// GetByID retrieves one lecturer
func (s *LecturerService) GetByID(ctx context.Context, id int64) (*models.Lecturer, error) {
	return s.lecturerRepo.GetByID(ctx, id)
}

// GetAll retrieves every lecturer
func (s *LecturerService) GetAll(ctx context.Context) ([]*models.Lecturer, error) {
	return s.lecturerRepo.GetAll(ctx)
}

// Delete removes a lecturer profile
func (s *LecturerService) Delete(ctx context.Context, id int64) error {
	return s.lecturerRepo.Delete(ctx, id)
}

// Courses retrieves the courses a lecturer is assigned to
func (s *LecturerService) Courses(ctx context.Context, lecturerID int64) ([]*models.Course, error) {
	if _, err := s.lecturerRepo.GetByID(ctx, lecturerID); err != nil {
		return nil, err
	}
	return s.courseRepo.GetByLecturer(ctx, lecturerID)
}

// FilterApplicants searches the applications to the lecturer's courses
// with the given optional predicates
func (s *LecturerService) FilterApplicants(ctx context.Context, lecturerID int64, filter dto.FilterApplicantsQuery) ([]*models.AppliedCourse, error) {
	if _, err := s.lecturerRepo.GetByID(ctx, lecturerID); err != nil {
		return nil, err
	}
	return s.appliedRepo.FilterByLecturer(ctx, lecturerID, filter)
}
