package repositories

import "github.com/jackc/pgx/v5/pgxpool"

// Repositories bundles every repository over one shared pool
type Repositories struct {
	Users              *UserRepository
	Candidates         *CandidateRepository
	Lecturers          *LecturerRepository
	Courses            *CourseRepository
	LecturerCourses    *LecturerCourseRepository
	AppliedCourses     *AppliedCourseRepository
	SelectedCandidates *SelectedCandidateRepository
	Comments           *CommentRepository
	Admins             *AdminRepository
}

// NewRepositories creates all repositories against the given pool
func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Users:              NewUserRepository(pool),
		Candidates:         NewCandidateRepository(pool),
		Lecturers:          NewLecturerRepository(pool),
		Courses:            NewCourseRepository(pool),
		LecturerCourses:    NewLecturerCourseRepository(pool),
		AppliedCourses:     NewAppliedCourseRepository(pool),
		SelectedCandidates: NewSelectedCandidateRepository(pool),
		Comments:           NewCommentRepository(pool),
		Admins:             NewAdminRepository(pool),
	}
}
