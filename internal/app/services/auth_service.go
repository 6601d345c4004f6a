package services

import (
	"context"
	"errors"

	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/pkg/apperrors"
	"github.com/teachteam/backend/internal/pkg/auth"
)

type userReader interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type adminReader interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
}

// AuthService handles credential checks and token issuing for both the
// user login and the admin console login
type AuthService struct {
	userRepo   userReader
	adminRepo  adminReader
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo userReader, adminRepo adminReader, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login verifies a user's credentials and issues a session token.
// Unknown emails and wrong passwords are indistinguishable to the
// caller; blocked accounts are rejected after the password check so the
// block message never leaks whether the password was right.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}
	if user.IsBlocked {
		return nil, "", apperrors.ErrAccountBlocked
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Email, string(user.Role), auth.AccountUser)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// AdminLogin verifies an admin's credentials and issues a session token
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (*models.Admin, string, error) {
	admin, err := s.adminRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrAdminNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(admin.Password, password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(admin.ID, admin.Username, "admin", auth.AccountAdmin)
	if err != nil {
		return nil, "", err
	}
	return admin, token, nil
}
