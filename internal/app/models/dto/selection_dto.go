package dto

// CreateSelectedCandidateRequest is the payload for selecting a candidate
type CreateSelectedCandidateRequest struct {
	LecturerID        int64 `json:"lecturerID" binding:"required" example:"2"`
	CandidateID       int64 `json:"candidateID" binding:"required" example:"1"`
	PreferenceRanking int   `json:"preferenceRanking" binding:"required,min=1" example:"1"`
}

// UpdateSelectedCandidateRequest changes a selection's rank. If another
// selection under the same lecturer already holds the rank, the two swap.
type UpdateSelectedCandidateRequest struct {
	PreferenceRanking *int `json:"preferenceRanking,omitempty" binding:"omitempty,min=1"`
}

