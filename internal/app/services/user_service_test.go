package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/pkg/apperrors"
	"github.com/teachteam/backend/internal/pkg/auth"
)

type fakeUserStore struct {
	users  map[int64]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[int64]*models.User{}, nextID: 1}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return apperrors.ErrEmailAlreadyInUse
		}
	}
	user.ID = f.nextID
	f.nextID++
	switch user.Role {
	case models.RoleCandidate:
		user.Candidate = &models.Candidate{ID: user.ID}
	case models.RoleLecturer:
		user.Lecturer = &models.Lecturer{ID: user.ID}
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) GetAll(_ context.Context) ([]*models.User, error) {
	var users []*models.User
	for _, user := range f.users {
		copied := *user
		users = append(users, &copied)
	}
	return users, nil
}

func (f *fakeUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return apperrors.ErrUserNotFound
	}
	copied := *user
	f.users[user.ID] = &copied
	return nil
}

func (f *fakeUserStore) SetBlocked(_ context.Context, id int64, blocked bool) error {
	user, ok := f.users[id]
	if !ok {
		return apperrors.ErrUserNotFound
	}
	user.IsBlocked = blocked
	return nil
}

func (f *fakeUserStore) Delete(_ context.Context, id int64) error {
	if _, ok := f.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func strPtr(s string) *string { return &s }

func TestRegisterHashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	user, err := svc.Register(context.Background(), &dto.CreateUserRequest{
		Email:     "jane@university.edu",
		Password:  "secret-password",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.RoleCandidate,
	})
	require.NoError(t, err)

	assert.NotEqual(t, "secret-password", user.Password)
	assert.True(t, auth.CheckPassword(user.Password, "secret-password"))
}

func TestRegisterCreatesProfileForRole(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	candidate, err := svc.Register(context.Background(), &dto.CreateUserRequest{
		Email:     "jane@university.edu",
		Password:  "secret-password",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.RoleCandidate,
	})
	require.NoError(t, err)
	require.NotNil(t, candidate.Candidate)
	assert.Equal(t, candidate.ID, candidate.Candidate.ID)
	assert.Nil(t, candidate.Lecturer)

	lecturer, err := svc.Register(context.Background(), &dto.CreateUserRequest{
		Email:     "john@university.edu",
		Password:  "secret-password",
		FirstName: "John",
		LastName:  "Smith",
		Role:      models.RoleLecturer,
	})
	require.NoError(t, err)
	require.NotNil(t, lecturer.Lecturer)
	assert.Nil(t, lecturer.Candidate)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	req := &dto.CreateUserRequest{
		Email:     "jane@university.edu",
		Password:  "secret-password",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.RoleCandidate,
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyInUse)
}

func TestUpdateUserPartial(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	created, err := svc.Register(context.Background(), &dto.CreateUserRequest{
		Email:     "jane@university.edu",
		Password:  "secret-password",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.RoleCandidate,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateUserRequest{
		FirstName: strPtr("Janet"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Janet", updated.FirstName)
	assert.Equal(t, "Doe", updated.LastName)
	assert.Equal(t, "jane@university.edu", updated.Email)
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	created, err := svc.Register(context.Background(), &dto.CreateUserRequest{
		Email:     "jane@university.edu",
		Password:  "secret-password",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.RoleCandidate,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateUserRequest{
		Password: strPtr("another-password"),
	})
	require.NoError(t, err)

	assert.NotEqual(t, "another-password", updated.Password)
	assert.True(t, auth.CheckPassword(updated.Password, "another-password"))
}

func TestSetBlocked(t *testing.T) {
	store := newFakeUserStore()
	svc := NewUserService(store)

	created, err := svc.Register(context.Background(), &dto.CreateUserRequest{
		Email:     "jane@university.edu",
		Password:  "secret-password",
		FirstName: "Jane",
		LastName:  "Doe",
		Role:      models.RoleCandidate,
	})
	require.NoError(t, err)

	blocked, err := svc.SetBlocked(context.Background(), created.ID, true)
	require.NoError(t, err)
	assert.True(t, blocked.IsBlocked)

	unblocked, err := svc.SetBlocked(context.Background(), created.ID, false)
	require.NoError(t, err)
	assert.False(t, unblocked.IsBlocked)
}
