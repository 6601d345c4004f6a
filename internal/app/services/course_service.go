package services

import (
	"context"

	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/models/dto"
)

type courseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	GetAll(ctx context.Context) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	DeleteWithAssignments(ctx context.Context, id int64) error
}

type assignmentStore interface {
	Create(ctx context.Context, assignment *models.LecturerCourse) error
	GetAll(ctx context.Context) ([]*models.LecturerCourse, error)
	GetByCourse(ctx context.Context, courseID int64) ([]*models.LecturerCourse, error)
	Delete(ctx context.Context, lecturerID, courseID int64) error
}

// CourseService handles courses and lecturer assignments
type CourseService struct {
	courseRepo     courseStore
	assignmentRepo assignmentStore
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseStore, assignmentRepo assignmentStore) *CourseService {
	return &CourseService{
		courseRepo:     courseRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Create adds a new course
func (s *CourseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	course := &models.Course{
		Code:     req.Code,
		Name:     req.Name,
		Semester: req.Semester,
	}
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// GetByID retrieves one course
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// GetAll retrieves every course
func (s *CourseService) GetAll(ctx context.Context) ([]*models.Course, error) {
	return s.courseRepo.GetAll(ctx)
}

// Update applies a partial update to a course
func (s *CourseService) Update(ctx context.Context, id int64, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Code != nil {
		course.Code = *req.Code
	}
	if req.Name != nil {
		course.Name = *req.Name
	}
	if req.Semester != nil {
		course.Semester = *req.Semester
	}

	if err := s.courseRepo.Update(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// Delete removes a course together with its lecturer assignments
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courseRepo.DeleteWithAssignments(ctx, id)
}

// AssignLecturer assigns a lecturer to a course
func (s *CourseService) AssignLecturer(ctx context.Context, req *dto.CreateLecturerCourseRequest) (*models.LecturerCourse, error) {
	assignment := &models.LecturerCourse{
		LecturerID: req.LecturerID,
		CourseID:   req.CourseID,
	}
	if err := s.assignmentRepo.Create(ctx, assignment); err != nil {
		return nil, err
	}
	return assignment, nil
}

// Assignments retrieves every lecturer assignment
func (s *CourseService) Assignments(ctx context.Context) ([]*models.LecturerCourse, error) {
	return s.assignmentRepo.GetAll(ctx)
}

// AssignmentsByCourse retrieves the lecturers assigned to one course
func (s *CourseService) AssignmentsByCourse(ctx context.Context, courseID int64) ([]*models.LecturerCourse, error) {
	if _, err := s.courseRepo.GetByID(ctx, courseID); err != nil {
		return nil, err
	}
	return s.assignmentRepo.GetByCourse(ctx, courseID)
}

// RemoveAssignment unassigns a lecturer from a course
func (s *CourseService) RemoveAssignment(ctx context.Context, lecturerID, courseID int64) error {
	return s.assignmentRepo.Delete(ctx, lecturerID, courseID)
}
