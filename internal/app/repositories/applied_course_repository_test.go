package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teachteam/backend/internal/app/models/dto"
)

func TestFilterQuerySortByCourse(t *testing.T) {
	repo := NewAppliedCourseRepository(nil)

	query, args, err := repo.filterQuery(7, dto.FilterApplicantsQuery{
		SortBy: "course",
		Order:  "desc",
	})
	require.NoError(t, err)

	assert.Contains(t, query, "ORDER BY c.code DESC")
	assert.Equal(t, []interface{}{int64(7)}, args)
}

func TestFilterQuerySortByAvailabilityDefaultsAscending(t *testing.T) {
	repo := NewAppliedCourseRepository(nil)

	query, _, err := repo.filterQuery(7, dto.FilterApplicantsQuery{
		SortBy: "availability",
	})
	require.NoError(t, err)

	assert.Contains(t, query, "ORDER BY cd.availability ASC")
}

func TestFilterQueryWithoutSortKeyIgnoresOrder(t *testing.T) {
	repo := NewAppliedCourseRepository(nil)

	query, _, err := repo.filterQuery(7, dto.FilterApplicantsQuery{
		Order: "desc",
	})
	require.NoError(t, err)

	assert.Contains(t, query, "ORDER BY ac.candidate_id")
	assert.NotContains(t, query, "ORDER BY ac.candidate_id DESC")
}

func TestFilterQueryConjunctivePredicates(t *testing.T) {
	repo := NewAppliedCourseRepository(nil)

	courseID := int64(3)
	role := "tutor"
	skill := "React"
	query, args, err := repo.filterQuery(7, dto.FilterApplicantsQuery{
		CourseID: &courseID,
		Role:     &role,
		Skill:    &skill,
	})
	require.NoError(t, err)

	assert.Contains(t, query, "lc.lecturer_id = $1")
	assert.Contains(t, query, "ac.course_id = $2")
	assert.Contains(t, query, "ac.role = $3")
	assert.Contains(t, query, "LOWER(cd.skills) LIKE $4")
	assert.Equal(t, []interface{}{int64(7), int64(3), "tutor", "%react%"}, args)
}
