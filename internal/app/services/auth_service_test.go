package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/pkg/apperrors"
	"github.com/teachteam/backend/internal/pkg/auth"
)

type fakeUserReader struct {
	user *models.User
	err  error
}

func (f *fakeUserReader) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	return f.user, f.err
}

type fakeAdminReader struct {
	admin *models.Admin
	err   error
}

func (f *fakeAdminReader) GetByUsername(_ context.Context, _ string) (*models.Admin, error) {
	return f.admin, f.err
}

func testJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExpiry: time.Hour,
		TokenIssuer: "test",
	})
}

func TestLoginSuccess(t *testing.T) {
	hashed, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	stored := &models.User{
		ID:       1,
		Email:    "jane@university.edu",
		Password: hashed,
		Role:     models.RoleCandidate,
	}
	jwtService := testJWTService(t)
	svc := NewAuthService(&fakeUserReader{user: stored}, &fakeAdminReader{}, jwtService)

	user, token, err := svc.Login(context.Background(), "jane@university.edu", "correct-password")
	require.NoError(t, err)
	assert.Equal(t, stored, user)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "jane@university.edu", claims.Email)
	assert.Equal(t, string(models.RoleCandidate), claims.Role)
	assert.Equal(t, auth.AccountUser, claims.AccountType)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	svc := NewAuthService(
		&fakeUserReader{user: &models.User{ID: 1, Password: hashed}},
		&fakeAdminReader{},
		testJWTService(t),
	)

	_, _, err = svc.Login(context.Background(), "jane@university.edu", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmailIndistinguishable(t *testing.T) {
	svc := NewAuthService(
		&fakeUserReader{err: apperrors.ErrUserNotFound},
		&fakeAdminReader{},
		testJWTService(t),
	)

	_, _, err := svc.Login(context.Background(), "nobody@university.edu", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginBlockedAccount(t *testing.T) {
	hashed, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	svc := NewAuthService(
		&fakeUserReader{user: &models.User{ID: 1, Password: hashed, IsBlocked: true}},
		&fakeAdminReader{},
		testJWTService(t),
	)

	_, _, err = svc.Login(context.Background(), "jane@university.edu", "correct-password")
	assert.ErrorIs(t, err, apperrors.ErrAccountBlocked)
}

func TestLoginBlockedAccountStillChecksPassword(t *testing.T) {
	hashed, err := auth.HashPassword("correct-password")
	require.NoError(t, err)

	svc := NewAuthService(
		&fakeUserReader{user: &models.User{ID: 1, Password: hashed, IsBlocked: true}},
		&fakeAdminReader{},
		testJWTService(t),
	)

	// A wrong password on a blocked account must not reveal the block.
	_, _, err = svc.Login(context.Background(), "jane@university.edu", "wrong-password")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAdminLogin(t *testing.T) {
	hashed, err := auth.HashPassword("console-password")
	require.NoError(t, err)

	jwtService := testJWTService(t)
	svc := NewAuthService(
		&fakeUserReader{},
		&fakeAdminReader{admin: &models.Admin{ID: 7, Username: "admin", Password: hashed}},
		jwtService,
	)

	admin, token, err := svc.AdminLogin(context.Background(), "admin", "console-password")
	require.NoError(t, err)
	assert.Equal(t, "admin", admin.Username)

	claims, err := jwtService.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, auth.AccountAdmin, claims.AccountType)
}

func TestAdminLoginUnknownUsername(t *testing.T) {
	svc := NewAuthService(
		&fakeUserReader{},
		&fakeAdminReader{err: apperrors.ErrAdminNotFound},
		testJWTService(t),
	)

	_, _, err := svc.AdminLogin(context.Background(), "nobody", "whatever")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
