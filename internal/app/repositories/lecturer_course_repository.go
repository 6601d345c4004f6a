package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/pkg/apperrors"
	"github.com/teachteam/backend/internal/pkg/dberrors"
)

// LecturerCourseRepository handles lecturer-to-course assignments
type LecturerCourseRepository struct {
	pool *pgxpool.Pool
}

// NewLecturerCourseRepository creates a new assignment repository
func NewLecturerCourseRepository(pool *pgxpool.Pool) *LecturerCourseRepository {
	return &LecturerCourseRepository{pool: pool}
}

// Create assigns a lecturer to a course
func (r *LecturerCourseRepository) Create(ctx context.Context, assignment *models.LecturerCourse) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO lecturer_courses (lecturer_id, course_id)
		VALUES ($1, $2)`,
		assignment.LecturerID, assignment.CourseID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrAssignmentExists
		}
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.ErrResourceNotFound
		}
		return fmt.Errorf("error creating assignment: %w", err)
	}
	return nil
}

// GetAll retrieves all assignments with lecturer and course attached
func (r *LecturerCourseRepository) GetAll(ctx context.Context) ([]*models.LecturerCourse, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT lc.lecturer_id, lc.course_id,
		       u.id, u.email, u.first_name, u.last_name, u.role, u.is_blocked, u.created_at,
		       c.id, c.code, c.name, c.semester
		FROM lecturer_courses lc
		JOIN users u ON u.id = lc.lecturer_id
		JOIN courses c ON c.id = lc.course_id
		ORDER BY lc.lecturer_id, c.code`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.LecturerCourse
	for rows.Next() {
		var assignment models.LecturerCourse
		var user models.User
		var course models.Course
		if err := rows.Scan(
			&assignment.LecturerID, &assignment.CourseID,
			&user.ID, &user.Email, &user.FirstName, &user.LastName,
			&user.Role, &user.IsBlocked, &user.CreatedAt,
			&course.ID, &course.Code, &course.Name, &course.Semester,
		); err != nil {
			return nil, fmt.Errorf("error scanning assignment: %w", err)
		}
		assignment.Lecturer = &models.Lecturer{ID: user.ID, User: &user}
		assignment.Course = &course
		assignments = append(assignments, &assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assignments, nil
}

// GetByCourse retrieves the lecturers assigned to a course
func (r *LecturerCourseRepository) GetByCourse(ctx context.Context, courseID int64) ([]*models.LecturerCourse, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT lecturer_id, course_id
		FROM lecturer_courses
		WHERE course_id = $1
		ORDER BY lecturer_id`, courseID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving course assignments: %w", err)
	}
	defer rows.Close()

	var assignments []*models.LecturerCourse
	for rows.Next() {
		var assignment models.LecturerCourse
		if err := rows.Scan(&assignment.LecturerID, &assignment.CourseID); err != nil {
			return nil, fmt.Errorf("error scanning assignment: %w", err)
		}
		assignments = append(assignments, &assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return assignments, nil
}

// Exists reports whether the lecturer is assigned to the course
func (r *LecturerCourseRepository) Exists(ctx context.Context, lecturerID, courseID int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM lecturer_courses WHERE lecturer_id = $1 AND course_id = $2)`,
		lecturerID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking assignment existence: %w", err)
	}
	return exists, nil
}

// Delete removes an assignment
func (r *LecturerCourseRepository) Delete(ctx context.Context, lecturerID, courseID int64) error {
	cmdTag, err := r.pool.Exec(ctx, `
		DELETE FROM lecturer_courses WHERE lecturer_id = $1 AND course_id = $2`,
		lecturerID, courseID)
	if err != nil {
		return fmt.Errorf("error deleting assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrAssignmentNotFound
	}
	return nil
}
