package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teachteam/backend/internal/app/models"
)

type fakeReportQuerier struct {
	overselected []*models.Candidate
	unselected   []*models.Candidate
	byCourse     map[int64][]*models.Candidate
	requestedN   int
}

func (f *fakeReportQuerier) CandidatesSelectedForMoreThanNCourses(_ context.Context, n int) ([]*models.Candidate, error) {
	f.requestedN = n
	return f.overselected, nil
}

func (f *fakeReportQuerier) CandidatesWithNoSelections(_ context.Context) ([]*models.Candidate, error) {
	return f.unselected, nil
}

func (f *fakeReportQuerier) CandidatesChosenByCourse(_ context.Context, courseID int64) ([]*models.Candidate, error) {
	return f.byCourse[courseID], nil
}

type fakeCourseLister struct {
	courses []*models.Course
}

func (f *fakeCourseLister) GetAll(_ context.Context) ([]*models.Course, error) {
	return f.courses, nil
}

func TestCandidatesChosenPerCourse(t *testing.T) {
	shared := &models.Candidate{ID: 10}
	querier := &fakeReportQuerier{
		byCourse: map[int64][]*models.Candidate{
			// The same candidate can surface under every course its
			// selecting lecturers are assigned to.
			1: {shared, {ID: 20}},
			2: {shared},
		},
	}
	lister := &fakeCourseLister{courses: []*models.Course{
		{ID: 1, Code: "COSC2758"},
		{ID: 2, Code: "COSC2408"},
		{ID: 3, Code: "COSC1107"},
	}}
	svc := NewReportService(querier, lister)

	report, err := svc.CandidatesChosenPerCourse(context.Background())
	require.NoError(t, err)
	require.Len(t, report, 3)

	assert.Equal(t, "COSC2758", report[0].Course.Code)
	assert.Len(t, report[0].SelectedCandidates, 2)
	assert.Len(t, report[1].SelectedCandidates, 1)
	assert.Equal(t, int64(10), report[1].SelectedCandidates[0].ID)

	// Courses without selections still appear, with an empty list.
	assert.Equal(t, "COSC1107", report[2].Course.Code)
	assert.Empty(t, report[2].SelectedCandidates)
}

func TestOverselectedCandidatesUsesCourseLimit(t *testing.T) {
	querier := &fakeReportQuerier{overselected: []*models.Candidate{{ID: 10}}}
	svc := NewReportService(querier, &fakeCourseLister{})

	candidates, err := svc.OverselectedCandidates(context.Background())
	require.NoError(t, err)
	assert.Len(t, candidates, 1)
	assert.Equal(t, 3, querier.requestedN)
}

func TestUnselectedCandidates(t *testing.T) {
	querier := &fakeReportQuerier{unselected: []*models.Candidate{{ID: 30}, {ID: 40}}}
	svc := NewReportService(querier, &fakeCourseLister{})

	candidates, err := svc.UnselectedCandidates(context.Background())
	require.NoError(t, err)
	assert.Len(t, candidates, 2)
}
