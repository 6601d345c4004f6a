package dto

import "github.com/teachteam/backend/internal/app/models"

// CreateCandidateRequest attaches a candidate profile to an existing user
type CreateCandidateRequest struct {
	UserID              int64                `json:"userID" binding:"required" example:"1"`
	PreviousRoles       *string              `json:"previousRoles,omitempty"`
	Availability        *models.Availability `json:"availability,omitempty" binding:"omitempty,oneof=part-time full-time"`
	Skills              *string              `json:"skills,omitempty"`
	AcademicCredentials *string              `json:"academicCredentials,omitempty"`
}

// UpdateCandidateRequest is a partial profile update
type UpdateCandidateRequest struct {
	PreviousRoles       *string              `json:"previousRoles,omitempty"`
	Availability        *models.Availability `json:"availability,omitempty" binding:"omitempty,oneof=part-time full-time"`
	Skills              *string              `json:"skills,omitempty"`
	AcademicCredentials *string              `json:"academicCredentials,omitempty"`
}

// CreateLecturerRequest attaches a lecturer profile to an existing user
type CreateLecturerRequest struct {
	UserID int64 `json:"userID" binding:"required" example:"2"`
}
