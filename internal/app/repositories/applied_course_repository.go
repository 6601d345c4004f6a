package repositories

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/db"
	"github.com/teachteam/backend/internal/pkg/apperrors"
	"github.com/teachteam/backend/internal/pkg/dberrors"
)

// AppliedCourseRepository handles candidate applications
type AppliedCourseRepository struct {
	pool *pgxpool.Pool
	sb   sq.StatementBuilderType
}

// NewAppliedCourseRepository creates a new application repository
func NewAppliedCourseRepository(pool *pgxpool.Pool) *AppliedCourseRepository {
	return &AppliedCourseRepository{
		pool: pool,
		sb:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Create inserts a new application
func (r *AppliedCourseRepository) Create(ctx context.Context, application *models.AppliedCourse) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO applied_courses (candidate_id, course_id, role)
		VALUES ($1, $2, $3)`,
		application.CandidateID, application.CourseID, application.Role)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrApplicationExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error creating application: %w", err)
	}
	return nil
}

// GetAll retrieves all applications with candidate and course attached
func (r *AppliedCourseRepository) GetAll(ctx context.Context) ([]*models.AppliedCourse, error) {
	rows, err := r.pool.Query(ctx, appliedCourseSelect+` ORDER BY ac.candidate_id, c.code, ac.role`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applications: %w", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

// GetByCandidate retrieves one candidate's applications
func (r *AppliedCourseRepository) GetByCandidate(ctx context.Context, candidateID int64) ([]*models.AppliedCourse, error) {
	rows, err := r.pool.Query(ctx,
		appliedCourseSelect+` WHERE ac.candidate_id = $1 ORDER BY c.code, ac.role`, candidateID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving candidate applications: %w", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

// Get retrieves one application by its composite key
func (r *AppliedCourseRepository) Get(ctx context.Context, candidateID, courseID int64, role models.CourseRole) (*models.AppliedCourse, error) {
	rows, err := r.pool.Query(ctx,
		appliedCourseSelect+` WHERE ac.candidate_id = $1 AND ac.course_id = $2 AND ac.role = $3`,
		candidateID, courseID, role)
	if err != nil {
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	defer rows.Close()

	applications, err := collectApplications(rows)
	if err != nil {
		return nil, err
	}
	if len(applications) == 0 {
		return nil, apperrors.ErrApplicationNotFound
	}
	return applications[0], nil
}

// GetByCourse retrieves the applications submitted to one course
func (r *AppliedCourseRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.AppliedCourse, error) {
	rows, err := r.pool.Query(ctx,
		appliedCourseSelect+` WHERE ac.course_id = $1 ORDER BY ac.candidate_id, ac.role`, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course applications: %w", err)
	}
	defer rows.Close()
	return collectApplications(rows)
}

// Exists reports whether the application identified by the composite key exists
func (r *AppliedCourseRepository) Exists(ctx context.Context, candidateID, courseID int64, role models.CourseRole) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM applied_courses
		WHERE candidate_id = $1 AND course_id = $2 AND role = $3)`,
		candidateID, courseID, role).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking application existence: %w", err)
	}
	return exists, nil
}

// Delete removes an application by its composite key
func (r *AppliedCourseRepository) Delete(ctx context.Context, candidateID, courseID int64, role models.CourseRole) error {
	cmdTag, err := r.pool.Exec(ctx, `
		DELETE FROM applied_courses
		WHERE candidate_id = $1 AND course_id = $2 AND role = $3`,
		candidateID, courseID, role)
	if err != nil {
		return fmt.Errorf("error deleting application: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrApplicationNotFound
	}
	return nil
}

// Replace removes the old application and inserts the new one in a
// single transaction, so a failed insert never loses the old row.
func (r *AppliedCourseRepository) Replace(ctx context.Context, candidateID int64, oldKey, newKey dto.ApplicationKey) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		cmdTag, err := tx.Exec(ctx, `
			DELETE FROM applied_courses
			WHERE candidate_id = $1 AND course_id = $2 AND role = $3`,
			candidateID, oldKey.CourseID, oldKey.Role)
		if err != nil {
			return fmt.Errorf("error deleting application: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrApplicationNotFound
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO applied_courses (candidate_id, course_id, role)
			VALUES ($1, $2, $3)`,
			candidateID, newKey.CourseID, newKey.Role)
		if err != nil {
			if dberrors.IsUniqueViolation(err) {
				return apperrors.ErrApplicationExists
			}
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.ErrCourseNotFound
			}
			return fmt.Errorf("error creating application: %w", err)
		}
		return nil
	})
}

// FilterByLecturer searches the applications to the lecturer's courses.
// All predicates are optional and conjunctive; text predicates match
// case-insensitive substrings.
func (r *AppliedCourseRepository) FilterByLecturer(ctx context.Context, lecturerID int64, filter dto.FilterApplicantsQuery) ([]*models.AppliedCourse, error) {
	query, args, err := r.filterQuery(lecturerID, filter)
	if err != nil {
		return nil, fmt.Errorf("error building filter query: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error filtering applications: %w", err)
	}
	defer rows.Close()

	var applications []*models.AppliedCourse
	for rows.Next() {
		var application models.AppliedCourse
		var candidate models.Candidate
		var user models.User
		var course models.Course
		if err := rows.Scan(
			&application.CandidateID, &application.CourseID, &application.Role,
			&candidate.PreviousRoles, &candidate.Availability, &candidate.Skills, &candidate.AcademicCredentials,
			&user.ID, &user.Email, &user.FirstName, &user.LastName,
			&user.Role, &user.IsBlocked, &user.CreatedAt,
			&course.ID, &course.Code, &course.Name, &course.Semester,
		); err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}
		candidate.ID = user.ID
		candidate.User = &user
		application.Candidate = &candidate
		application.Course = &course
		applications = append(applications, &application)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return applications, nil
}

func (r *AppliedCourseRepository) filterQuery(lecturerID int64, filter dto.FilterApplicantsQuery) (string, []interface{}, error) {
	builder := r.sb.
		Select(
			"ac.candidate_id", "ac.course_id", "ac.role",
			"cd.previous_roles", "cd.availability", "cd.skills", "cd.academic_credentials",
			"u.id", "u.email", "u.first_name", "u.last_name", "u.role", "u.is_blocked", "u.created_at",
			"c.id", "c.code", "c.name", "c.semester",
		).
		From("applied_courses ac").
		Join("candidates cd ON cd.id = ac.candidate_id").
		Join("users u ON u.id = cd.id").
		Join("courses c ON c.id = ac.course_id").
		Join("lecturer_courses lc ON lc.course_id = ac.course_id").
		Where(sq.Eq{"lc.lecturer_id": lecturerID})

	if filter.CourseID != nil {
		builder = builder.Where(sq.Eq{"ac.course_id": *filter.CourseID})
	}
	if filter.Role != nil {
		builder = builder.Where(sq.Eq{"ac.role": *filter.Role})
	}
	if filter.Availability != nil {
		builder = builder.Where(sq.Eq{"cd.availability": *filter.Availability})
	}
	if filter.Skill != nil {
		builder = builder.Where(sq.Like{"LOWER(cd.skills)": "%" + strings.ToLower(*filter.Skill) + "%"})
	}
	if filter.Name != nil {
		builder = builder.Where(
			sq.Like{"LOWER(CONCAT(u.first_name, ' ', u.last_name))": "%" + strings.ToLower(*filter.Name) + "%"})
	}

	direction := "ASC"
	if filter.Order == "desc" {
		direction = "DESC"
	}
	switch filter.SortBy {
	case "course":
		builder = builder.OrderBy("c.code " + direction)
	case "availability":
		builder = builder.OrderBy("cd.availability " + direction)
	default:
		// Order only applies to the recognized sort keys; otherwise the
		// retrieval order stays fixed.
		builder = builder.OrderBy("ac.candidate_id")
	}

	return builder.ToSql()
}

const appliedCourseSelect = `
	SELECT ac.candidate_id, ac.course_id, ac.role,
	       cd.previous_roles, cd.availability, cd.skills, cd.academic_credentials,
	       u.id, u.email, u.first_name, u.last_name, u.role, u.is_blocked, u.created_at,
	       c.id, c.code, c.name, c.semester
	FROM applied_courses ac
	JOIN candidates cd ON cd.id = ac.candidate_id
	JOIN users u ON u.id = cd.id
	JOIN courses c ON c.id = ac.course_id`

func collectApplications(rows pgx.Rows) ([]*models.AppliedCourse, error) {
	var applications []*models.AppliedCourse
	for rows.Next() {
		var application models.AppliedCourse
		var candidate models.Candidate
		var user models.User
		var course models.Course
		if err := rows.Scan(
			&application.CandidateID, &application.CourseID, &application.Role,
			&candidate.PreviousRoles, &candidate.Availability, &candidate.Skills, &candidate.AcademicCredentials,
			&user.ID, &user.Email, &user.FirstName, &user.LastName,
			&user.Role, &user.IsBlocked, &user.CreatedAt,
			&course.ID, &course.Code, &course.Name, &course.Semester,
		); err != nil {
			return nil, fmt.Errorf("error scanning application: %w", err)
		}
		candidate.ID = user.ID
		candidate.User = &user
		application.Candidate = &candidate
		application.Course = &course
		applications = append(applications, &application)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return applications, nil
}
