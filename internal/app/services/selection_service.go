package services

import (
	"context"

	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/pkg/apperrors"
)

type selectionStore interface {
	Create(ctx context.Context, selection *models.SelectedCandidate) error
	Get(ctx context.Context, lecturerID, candidateID int64) (*models.SelectedCandidate, error)
	GetAll(ctx context.Context) ([]*models.SelectedCandidate, error)
	GetByLecturer(ctx context.Context, lecturerID int64) ([]*models.SelectedCandidate, error)
	GetByCandidate(ctx context.Context, candidateID int64) ([]*models.SelectedCandidate, error)
	UpdateRanking(ctx context.Context, lecturerID, candidateID int64, newRank int) error
	Delete(ctx context.Context, lecturerID, candidateID int64) error
	SelectionCounts(ctx context.Context) ([]*models.CandidateSelectionCount, error)
	CandidatesWithNoSelections(ctx context.Context) ([]*models.Candidate, error)
}

// SelectionService handles lecturer selections and preference ranks
type SelectionService struct {
	selectionRepo selectionStore
}

// NewSelectionService creates a new selection service instance
func NewSelectionService(selectionRepo selectionStore) *SelectionService {
	return &SelectionService{selectionRepo: selectionRepo}
}

// Create records a lecturer's selection of a candidate
func (s *SelectionService) Create(ctx context.Context, req *dto.CreateSelectedCandidateRequest) (*models.SelectedCandidate, error) {
	selection := &models.SelectedCandidate{
		LecturerID:        req.LecturerID,
		CandidateID:       req.CandidateID,
		PreferenceRanking: req.PreferenceRanking,
	}
	if err := s.selectionRepo.Create(ctx, selection); err != nil {
		return nil, err
	}
	return selection, nil
}

// Get retrieves one selection by its composite key
func (s *SelectionService) Get(ctx context.Context, lecturerID, candidateID int64) (*models.SelectedCandidate, error) {
	return s.selectionRepo.Get(ctx, lecturerID, candidateID)
}

// GetAll retrieves every selection
func (s *SelectionService) GetAll(ctx context.Context) ([]*models.SelectedCandidate, error) {
	return s.selectionRepo.GetAll(ctx)
}

// GetByLecturer retrieves one lecturer's selections ordered by rank
func (s *SelectionService) GetByLecturer(ctx context.Context, lecturerID int64) ([]*models.SelectedCandidate, error) {
	return s.selectionRepo.GetByLecturer(ctx, lecturerID)
}

// GetByCandidate retrieves the selections naming one candidate
func (s *SelectionService) GetByCandidate(ctx context.Context, candidateID int64) ([]*models.SelectedCandidate, error) {
	return s.selectionRepo.GetByCandidate(ctx, candidateID)
}

// UpdateRanking moves a selection to a new rank, swapping with whichever
// selection held that rank under the same lecturer
func (s *SelectionService) UpdateRanking(ctx context.Context, lecturerID, candidateID int64, req *dto.UpdateSelectedCandidateRequest) (*models.SelectedCandidate, error) {
	if req.PreferenceRanking == nil {
		return nil, apperrors.NewValidationError("preferenceRanking is required")
	}
	if err := s.selectionRepo.UpdateRanking(ctx, lecturerID, candidateID, *req.PreferenceRanking); err != nil {
		return nil, err
	}
	return s.selectionRepo.Get(ctx, lecturerID, candidateID)
}

// Delete withdraws a selection
func (s *SelectionService) Delete(ctx context.Context, lecturerID, candidateID int64) error {
	return s.selectionRepo.Delete(ctx, lecturerID, candidateID)
}

// SelectionCounts returns how many lecturers selected each candidate
func (s *SelectionService) SelectionCounts(ctx context.Context) ([]*models.CandidateSelectionCount, error) {
	return s.selectionRepo.SelectionCounts(ctx)
}

// Classification buckets candidates into most selected, least selected
// and not selected. Ties share a bucket; when every selected candidate
// has the same count, the most and least buckets stay empty.
func (s *SelectionService) Classification(ctx context.Context) (*dto.SelectionClassification, error) {
	counts, err := s.selectionRepo.SelectionCounts(ctx)
	if err != nil {
		return nil, err
	}
	notSelected, err := s.selectionRepo.CandidatesWithNoSelections(ctx)
	if err != nil {
		return nil, err
	}

	result := &dto.SelectionClassification{NotSelected: notSelected}
	if len(counts) == 0 {
		return result, nil
	}

	maxCount := counts[0].SelectedCount
	minCount := counts[0].SelectedCount
	for _, count := range counts[1:] {
		if count.SelectedCount > maxCount {
			maxCount = count.SelectedCount
		}
		if count.SelectedCount < minCount {
			minCount = count.SelectedCount
		}
	}
	if maxCount == minCount {
		return result, nil
	}

	for _, count := range counts {
		switch count.SelectedCount {
		case maxCount:
			result.MostSelected = append(result.MostSelected, count)
		case minCount:
			result.LeastSelected = append(result.LeastSelected, count)
		}
	}
	return result, nil
}
