package services

import (
	"context"

	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/models/dto"
)

// A candidate counts as overselected once the selections naming them
// span more than this many distinct courses.
const overselectionCourseLimit = 3

type reportQuerier interface {
	CandidatesSelectedForMoreThanNCourses(ctx context.Context, n int) ([]*models.Candidate, error)
	CandidatesWithNoSelections(ctx context.Context) ([]*models.Candidate, error)
	CandidatesChosenByCourse(ctx context.Context, courseID int64) ([]*models.Candidate, error)
}

type courseLister interface {
	GetAll(ctx context.Context) ([]*models.Course, error)
}

// ReportService builds the admin console's selection reports
type ReportService struct {
	selectionRepo reportQuerier
	courseRepo    courseLister
}

// NewReportService creates a new report service instance
func NewReportService(selectionRepo reportQuerier, courseRepo courseLister) *ReportService {
	return &ReportService{
		selectionRepo: selectionRepo,
		courseRepo:    courseRepo,
	}
}

// CandidatesChosenPerCourse lists, for every course, the distinct
// candidates selected by the lecturers assigned to it. A lecturer's
// selections are not tied to a single course, so a candidate appears
// under every course its selecting lecturers are assigned to.
func (s *ReportService) CandidatesChosenPerCourse(ctx context.Context) ([]*dto.CourseWithSelectedCandidates, error) {
	courses, err := s.courseRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	report := make([]*dto.CourseWithSelectedCandidates, 0, len(courses))
	for _, course := range courses {
		candidates, err := s.selectionRepo.CandidatesChosenByCourse(ctx, course.ID)
		if err != nil {
			return nil, err
		}
		report = append(report, &dto.CourseWithSelectedCandidates{
			Course:             *course,
			SelectedCandidates: candidates,
		})
	}
	return report, nil
}

// OverselectedCandidates lists candidates whose selections span more
// than three distinct courses
func (s *ReportService) OverselectedCandidates(ctx context.Context) ([]*models.Candidate, error) {
	return s.selectionRepo.CandidatesSelectedForMoreThanNCourses(ctx, overselectionCourseLimit)
}

// UnselectedCandidates lists candidates no lecturer selected
func (s *ReportService) UnselectedCandidates(ctx context.Context) ([]*models.Candidate, error) {
	return s.selectionRepo.CandidatesWithNoSelections(ctx)
}
