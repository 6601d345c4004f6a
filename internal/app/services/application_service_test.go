package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/pkg/apperrors"
)

type fakeApplicationStore struct {
	existing     map[[3]int64]bool
	created      []*models.AppliedCourse
	replaceCalls int
}

func applicationKey(candidateID, courseID int64, role models.CourseRole) [3]int64 {
	roleBit := int64(0)
	if role == models.RoleLabAssistant {
		roleBit = 1
	}
	return [3]int64{candidateID, courseID, roleBit}
}

func (f *fakeApplicationStore) Create(_ context.Context, application *models.AppliedCourse) error {
	f.created = append(f.created, application)
	return nil
}

func (f *fakeApplicationStore) GetAll(_ context.Context) ([]*models.AppliedCourse, error) {
	return f.created, nil
}

func (f *fakeApplicationStore) Get(_ context.Context, candidateID, courseID int64, role models.CourseRole) (*models.AppliedCourse, error) {
	for _, application := range f.created {
		if application.CandidateID == candidateID && application.CourseID == courseID && application.Role == role {
			return application, nil
		}
	}
	return nil, apperrors.ErrApplicationNotFound
}

func (f *fakeApplicationStore) GetByCandidate(_ context.Context, _ int64) ([]*models.AppliedCourse, error) {
	return f.created, nil
}

func (f *fakeApplicationStore) GetByCourse(_ context.Context, courseID int64) ([]*models.AppliedCourse, error) {
	var applications []*models.AppliedCourse
	for _, application := range f.created {
		if application.CourseID == courseID {
			applications = append(applications, application)
		}
	}
	return applications, nil
}

func (f *fakeApplicationStore) Exists(_ context.Context, candidateID, courseID int64, role models.CourseRole) (bool, error) {
	return f.existing[applicationKey(candidateID, courseID, role)], nil
}

func (f *fakeApplicationStore) Delete(_ context.Context, _, _ int64, _ models.CourseRole) error {
	return nil
}

func (f *fakeApplicationStore) Replace(_ context.Context, _ int64, _, _ dto.ApplicationKey) error {
	f.replaceCalls++
	return nil
}

func TestCreateApplication(t *testing.T) {
	store := &fakeApplicationStore{existing: map[[3]int64]bool{}}
	svc := NewApplicationService(store)

	application, err := svc.Create(context.Background(), &dto.CreateAppliedCourseRequest{
		CandidateID: 1,
		CourseID:    2,
		Role:        models.RoleTutor,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), application.CandidateID)
	assert.Equal(t, models.RoleTutor, application.Role)
	assert.Len(t, store.created, 1)
}

func TestCreateApplicationDuplicate(t *testing.T) {
	store := &fakeApplicationStore{
		existing: map[[3]int64]bool{applicationKey(1, 2, models.RoleTutor): true},
	}
	svc := NewApplicationService(store)

	_, err := svc.Create(context.Background(), &dto.CreateAppliedCourseRequest{
		CandidateID: 1,
		CourseID:    2,
		Role:        models.RoleTutor,
	})
	assert.ErrorIs(t, err, apperrors.ErrApplicationExists)
	assert.Empty(t, store.created)
}

func TestCreateApplicationSameCourseOtherRole(t *testing.T) {
	store := &fakeApplicationStore{
		existing: map[[3]int64]bool{applicationKey(1, 2, models.RoleTutor): true},
	}
	svc := NewApplicationService(store)

	// The role is part of the key, so the same course accepts a second
	// application under the other role.
	_, err := svc.Create(context.Background(), &dto.CreateAppliedCourseRequest{
		CandidateID: 1,
		CourseID:    2,
		Role:        models.RoleLabAssistant,
	})
	assert.NoError(t, err)
	assert.Len(t, store.created, 1)
}

func TestReplaceApplicationIdenticalKeyIsNoop(t *testing.T) {
	store := &fakeApplicationStore{existing: map[[3]int64]bool{}}
	svc := NewApplicationService(store)

	key := dto.ApplicationKey{CourseID: 2, Role: models.RoleTutor}
	err := svc.Replace(context.Background(), &dto.ReplaceAppliedCourseRequest{
		CandidateID: 1,
		Old:         key,
		New:         key,
	})
	require.NoError(t, err)
	assert.Zero(t, store.replaceCalls)
}

func TestReplaceApplication(t *testing.T) {
	store := &fakeApplicationStore{existing: map[[3]int64]bool{}}
	svc := NewApplicationService(store)

	err := svc.Replace(context.Background(), &dto.ReplaceAppliedCourseRequest{
		CandidateID: 1,
		Old:         dto.ApplicationKey{CourseID: 2, Role: models.RoleTutor},
		New:         dto.ApplicationKey{CourseID: 3, Role: models.RoleTutor},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, store.replaceCalls)
}
