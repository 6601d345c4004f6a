package dto

import "github.com/teachteam/backend/internal/app/models"

// CreateUserRequest is the registration payload. The role decides which
// profile row gets created alongside the user.
type CreateUserRequest struct {
	Email     string          `json:"email" binding:"required,email" example:"jane@university.edu"`
	Password  string          `json:"password" binding:"required,min=8" example:"secret-password"`
	FirstName string          `json:"firstName" binding:"required" example:"Jane"`
	LastName  string          `json:"lastName" binding:"required" example:"Doe"`
	Role      models.UserRole `json:"role" binding:"required,oneof=candidate lecturer" example:"candidate"`
}

// UpdateUserRequest is a partial update; absent fields are left unchanged.
type UpdateUserRequest struct {
	Email     *string          `json:"email,omitempty" binding:"omitempty,email"`
	Password  *string          `json:"password,omitempty" binding:"omitempty,min=8"`
	FirstName *string          `json:"firstName,omitempty"`
	LastName  *string          `json:"lastName,omitempty"`
	Role      *models.UserRole `json:"role,omitempty" binding:"omitempty,oneof=candidate lecturer"`
}

// LoginRequest is the credential payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the authenticated user and its session token.
// The token replaces the client-side ambient auth state of the web app.
type LoginResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}
