package services

import (
	"context"

	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/pkg/auth"
)

type userStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	Update(ctx context.Context, user *models.User) error
	SetBlocked(ctx context.Context, id int64, blocked bool) error
	Delete(ctx context.Context, id int64) error
}

// UserService handles account registration and maintenance
type UserService struct {
	userRepo userStore
}

// NewUserService creates a new user service instance
func NewUserService(userRepo userStore) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates an account with a hashed password and an empty
// profile row matching the chosen role
func (s *UserService) Register(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves one user
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// GetAll retrieves every user
func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	return s.userRepo.GetAll(ctx)
}

// Update applies a partial update to an account. A new password is
// hashed before it is stored.
func (s *UserService) Update(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil {
		hashed, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.Role != nil {
		user.Role = *req.Role
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SetBlocked blocks or unblocks an account
func (s *UserService) SetBlocked(ctx context.Context, id int64, blocked bool) (*models.User, error) {
	if err := s.userRepo.SetBlocked(ctx, id, blocked); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, id)
}

// Delete removes an account and everything hanging off it
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}
