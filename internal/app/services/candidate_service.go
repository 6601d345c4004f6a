package services

import (
	"context"

	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/models/dto"
)

type candidateStore interface {
	Create(ctx context.Context, candidate *models.Candidate) error
	GetByID(ctx context.Context, id int64) (*models.Candidate, error)
	GetAll(ctx context.Context) ([]*models.Candidate, error)
	Update(ctx context.Context, candidate *models.Candidate) error
	Delete(ctx context.Context, id int64) error
}

// CandidateService handles candidate profile operations
type CandidateService struct {
	candidateRepo candidateStore
}

// NewCandidateService creates a new candidate service instance
func NewCandidateService(candidateRepo candidateStore) *CandidateService {
	return &CandidateService{candidateRepo: candidateRepo}
}

// Create attaches a candidate profile to an existing user
func (s *CandidateService) Create(ctx context.Context, req *dto.CreateCandidateRequest) (*models.Candidate, error) {
	candidate := &models.Candidate{
		ID:                  req.UserID,
		PreviousRoles:       req.PreviousRoles,
		Availability:        req.Availability,
		Skills:              req.Skills,
		AcademicCredentials: req.AcademicCredentials,
	}
	if err := s.candidateRepo.Create(ctx, candidate); err != nil {
		return nil, err
	}
	return s.candidateRepo.GetByID(ctx, candidate.ID)
}

// GetByID retrieves one candidate
func (s *CandidateService) GetByID(ctx context.Context, id int64) (*models.Candidate, error) {
	return s.candidateRepo.GetByID(ctx, id)
}

// GetAll retrieves every candidate
func (s *CandidateService) GetAll(ctx context.Context) ([]*models.Candidate, error) {
	return s.candidateRepo.GetAll(ctx)
}

// Update applies a partial update to a candidate profile
func (s *CandidateService) Update(ctx context.Context, id int64, req *dto.UpdateCandidateRequest) (*models.Candidate, error) {
	candidate, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.PreviousRoles != nil {
		candidate.PreviousRoles = req.PreviousRoles
	}
	if req.Availability != nil {
		candidate.Availability = req.Availability
	}
	if req.Skills != nil {
		candidate.Skills = req.Skills
	}
	if req.AcademicCredentials != nil {
		candidate.AcademicCredentials = req.AcademicCredentials
	}

	if err := s.candidateRepo.Update(ctx, candidate); err != nil {
		return nil, err
	}
	return candidate, nil
}

// Delete removes a candidate profile
func (s *CandidateService) Delete(ctx context.Context, id int64) error {
	return s.candidateRepo.Delete(ctx, id)
}
