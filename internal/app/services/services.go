package services

import (
	"github.com/teachteam/backend/internal/app/repositories"
	"github.com/teachteam/backend/internal/pkg/auth"
)

// Services bundles every business-logic service
type Services struct {
	Auth         *AuthService
	Users        *UserService
	Candidates   *CandidateService
	Lecturers    *LecturerService
	Courses      *CourseService
	Applications *ApplicationService
	Selections   *SelectionService
	Comments     *CommentService
	Reports      *ReportService
}

// NewServices wires every service to the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		Auth:         NewAuthService(repos.Users, repos.Admins, jwtService),
		Users:        NewUserService(repos.Users),
		Candidates:   NewCandidateService(repos.Candidates),
		Lecturers:    NewLecturerService(repos.Lecturers, repos.AppliedCourses, repos.Courses),
		Courses:      NewCourseService(repos.Courses, repos.LecturerCourses),
		Applications: NewApplicationService(repos.AppliedCourses),
		Selections:   NewSelectionService(repos.SelectedCandidates),
		Comments:     NewCommentService(repos.Comments),
		Reports:      NewReportService(repos.SelectedCandidates, repos.Courses),
	}
}
