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

// fakeSelectionStore keeps selections in memory and mirrors the swap
// behavior of the database layer: moving a selection onto an occupied
// rank hands the vacated rank to the previous holder.
type fakeSelectionStore struct {
	selections map[[2]int64]int
	unselected []*models.Candidate
}

func newFakeSelectionStore() *fakeSelectionStore {
	return &fakeSelectionStore{selections: map[[2]int64]int{}}
}

func (f *fakeSelectionStore) Create(_ context.Context, selection *models.SelectedCandidate) error {
	key := [2]int64{selection.LecturerID, selection.CandidateID}
	if _, ok := f.selections[key]; ok {
		return apperrors.ErrAlreadySelected
	}
	f.selections[key] = selection.PreferenceRanking
	return nil
}

func (f *fakeSelectionStore) Get(_ context.Context, lecturerID, candidateID int64) (*models.SelectedCandidate, error) {
	rank, ok := f.selections[[2]int64{lecturerID, candidateID}]
	if !ok {
		return nil, apperrors.ErrSelectionNotFound
	}
	return &models.SelectedCandidate{
		LecturerID:        lecturerID,
		CandidateID:       candidateID,
		PreferenceRanking: rank,
	}, nil
}

func (f *fakeSelectionStore) GetAll(_ context.Context) ([]*models.SelectedCandidate, error) {
	var selections []*models.SelectedCandidate
	for key, rank := range f.selections {
		selections = append(selections, &models.SelectedCandidate{
			LecturerID:        key[0],
			CandidateID:       key[1],
			PreferenceRanking: rank,
		})
	}
	return selections, nil
}

func (f *fakeSelectionStore) GetByLecturer(ctx context.Context, lecturerID int64) ([]*models.SelectedCandidate, error) {
	all, _ := f.GetAll(ctx)
	var selections []*models.SelectedCandidate
	for _, selection := range all {
		if selection.LecturerID == lecturerID {
			selections = append(selections, selection)
		}
	}
	return selections, nil
}

func (f *fakeSelectionStore) GetByCandidate(ctx context.Context, candidateID int64) ([]*models.SelectedCandidate, error) {
	all, _ := f.GetAll(ctx)
	var selections []*models.SelectedCandidate
	for _, selection := range all {
		if selection.CandidateID == candidateID {
			selections = append(selections, selection)
		}
	}
	return selections, nil
}

func (f *fakeSelectionStore) CandidatesWithNoSelections(_ context.Context) ([]*models.Candidate, error) {
	return f.unselected, nil
}

func (f *fakeSelectionStore) UpdateRanking(_ context.Context, lecturerID, candidateID int64, newRank int) error {
	key := [2]int64{lecturerID, candidateID}
	previousRank, ok := f.selections[key]
	if !ok {
		return apperrors.ErrSelectionNotFound
	}
	if previousRank == newRank {
		return nil
	}
	for otherKey, rank := range f.selections {
		if otherKey[0] == lecturerID && otherKey != key && rank == newRank {
			f.selections[otherKey] = previousRank
			break
		}
	}
	f.selections[key] = newRank
	return nil
}

func (f *fakeSelectionStore) Delete(_ context.Context, lecturerID, candidateID int64) error {
	key := [2]int64{lecturerID, candidateID}
	if _, ok := f.selections[key]; !ok {
		return apperrors.ErrSelectionNotFound
	}
	delete(f.selections, key)
	return nil
}

func (f *fakeSelectionStore) SelectionCounts(_ context.Context) ([]*models.CandidateSelectionCount, error) {
	counts := map[int64]int{}
	for key := range f.selections {
		counts[key[1]]++
	}
	var result []*models.CandidateSelectionCount
	for candidateID, count := range counts {
		result = append(result, &models.CandidateSelectionCount{
			CandidateID:   candidateID,
			SelectedCount: count,
		})
	}
	return result, nil
}

func intPtr(v int) *int { return &v }

func TestCreateSelectionDuplicate(t *testing.T) {
	store := newFakeSelectionStore()
	svc := NewSelectionService(store)

	_, err := svc.Create(context.Background(), &dto.CreateSelectedCandidateRequest{
		LecturerID: 1, CandidateID: 10, PreferenceRanking: 1,
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &dto.CreateSelectedCandidateRequest{
		LecturerID: 1, CandidateID: 10, PreferenceRanking: 2,
	})
	assert.ErrorIs(t, err, apperrors.ErrAlreadySelected)
}

func TestUpdateRankingSwapsWithHolder(t *testing.T) {
	store := newFakeSelectionStore()
	store.selections[[2]int64{1, 10}] = 1
	store.selections[[2]int64{1, 20}] = 2
	svc := NewSelectionService(store)

	updated, err := svc.UpdateRanking(context.Background(), 1, 10,
		&dto.UpdateSelectedCandidateRequest{PreferenceRanking: intPtr(2)})
	require.NoError(t, err)

	assert.Equal(t, 2, updated.PreferenceRanking)
	assert.Equal(t, 1, store.selections[[2]int64{1, 20}])
}

func TestUpdateRankingDoesNotTouchOtherLecturers(t *testing.T) {
	store := newFakeSelectionStore()
	store.selections[[2]int64{1, 10}] = 1
	store.selections[[2]int64{2, 20}] = 2
	svc := NewSelectionService(store)

	_, err := svc.UpdateRanking(context.Background(), 1, 10,
		&dto.UpdateSelectedCandidateRequest{PreferenceRanking: intPtr(2)})
	require.NoError(t, err)

	assert.Equal(t, 2, store.selections[[2]int64{1, 10}])
	assert.Equal(t, 2, store.selections[[2]int64{2, 20}])
}

func TestUpdateRankingSameRankIsNoop(t *testing.T) {
	store := newFakeSelectionStore()
	store.selections[[2]int64{1, 10}] = 3
	svc := NewSelectionService(store)

	updated, err := svc.UpdateRanking(context.Background(), 1, 10,
		&dto.UpdateSelectedCandidateRequest{PreferenceRanking: intPtr(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.PreferenceRanking)
}

func TestUpdateRankingMissingRank(t *testing.T) {
	svc := NewSelectionService(newFakeSelectionStore())

	_, err := svc.UpdateRanking(context.Background(), 1, 10,
		&dto.UpdateSelectedCandidateRequest{})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateRankingUnknownSelection(t *testing.T) {
	svc := NewSelectionService(newFakeSelectionStore())

	_, err := svc.UpdateRanking(context.Background(), 1, 10,
		&dto.UpdateSelectedCandidateRequest{PreferenceRanking: intPtr(1)})
	assert.ErrorIs(t, err, apperrors.ErrSelectionNotFound)
}

func TestSelectionCounts(t *testing.T) {
	store := newFakeSelectionStore()
	store.selections[[2]int64{1, 10}] = 1
	store.selections[[2]int64{2, 10}] = 1
	store.selections[[2]int64{2, 20}] = 2
	svc := NewSelectionService(store)

	counts, err := svc.SelectionCounts(context.Background())
	require.NoError(t, err)

	byCandidate := map[int64]int{}
	for _, count := range counts {
		byCandidate[count.CandidateID] = count.SelectedCount
	}
	assert.Equal(t, map[int64]int{10: 2, 20: 1}, byCandidate)
}

func TestClassification(t *testing.T) {
	store := newFakeSelectionStore()
	store.selections[[2]int64{1, 10}] = 1
	store.selections[[2]int64{2, 10}] = 1
	store.selections[[2]int64{3, 10}] = 2
	store.selections[[2]int64{1, 20}] = 2
	store.selections[[2]int64{2, 30}] = 1
	store.unselected = []*models.Candidate{{ID: 40}}
	svc := NewSelectionService(store)

	classification, err := svc.Classification(context.Background())
	require.NoError(t, err)

	require.Len(t, classification.MostSelected, 1)
	assert.Equal(t, int64(10), classification.MostSelected[0].CandidateID)

	// Candidates 20 and 30 tie on the minimum and share the bucket.
	leastIDs := map[int64]bool{}
	for _, count := range classification.LeastSelected {
		leastIDs[count.CandidateID] = true
	}
	assert.Equal(t, map[int64]bool{20: true, 30: true}, leastIDs)

	require.Len(t, classification.NotSelected, 1)
	assert.Equal(t, int64(40), classification.NotSelected[0].ID)
}

func TestClassificationAllCountsEqual(t *testing.T) {
	store := newFakeSelectionStore()
	store.selections[[2]int64{1, 10}] = 1
	store.selections[[2]int64{2, 20}] = 1
	svc := NewSelectionService(store)

	classification, err := svc.Classification(context.Background())
	require.NoError(t, err)

	assert.Empty(t, classification.MostSelected)
	assert.Empty(t, classification.LeastSelected)
}
