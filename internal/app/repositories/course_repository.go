package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/db"
	"github.com/teachteam/backend/internal/pkg/apperrors"
	"github.com/teachteam/backend/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(pool *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{pool: pool}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO courses (code, name, semester)
		VALUES ($1, $2, $3)
		RETURNING id`,
		course.Code, course.Name, course.Semester,
	).Scan(&course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}
	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	var course models.Course
	err := r.pool.QueryRow(ctx, `
		SELECT id, code, name, semester FROM courses WHERE id = $1`, id,
	).Scan(&course.ID, &course.Code, &course.Name, &course.Semester)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}
	return &course, nil
}

// GetAll retrieves all courses ordered by code
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, code, name, semester FROM courses ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Code, &course.Name, &course.Semester); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

// GetByLecturer retrieves the courses a lecturer is assigned to
func (r *CourseRepository) GetByLecturer(ctx context.Context, lecturerID int64) ([]*models.Course, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT c.id, c.code, c.name, c.semester
		FROM courses c
		JOIN lecturer_courses lc ON lc.course_id = c.id
		WHERE lc.lecturer_id = $1
		ORDER BY c.code`, lecturerID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving lecturer courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(&course.ID, &course.Code, &course.Name, &course.Semester); err != nil {
			return nil, fmt.Errorf("error scanning course: %w", err)
		}
		courses = append(courses, &course)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	cmdTag, err := r.pool.Exec(ctx, `
		UPDATE courses SET code = $1, name = $2, semester = $3 WHERE id = $4`,
		course.Code, course.Name, course.Semester, course.ID)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}
	return nil
}

// DeleteWithAssignments removes a course together with its lecturer
// assignments in one transaction. Applications and the course row's
// other dependents are covered by ON DELETE CASCADE.
func (r *CourseRepository) DeleteWithAssignments(ctx context.Context, id int64) error {
	return db.WithTransaction(ctx, r.pool, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM lecturer_courses WHERE course_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting course assignments: %w", err)
		}
		cmdTag, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCourseNotFound
		}
		return nil
	})
}

// Exists reports whether a course row exists
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}
