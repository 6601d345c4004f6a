package models

// CandidateSelectionCount is one row of the selection-count aggregate:
// how many lecturers selected the candidate. Candidates with zero
// selections are not represented.
type CandidateSelectionCount struct {
	CandidateID   int64 `json:"candidateID" db:"candidate_id"`
	SelectedCount int   `json:"selectedcount" db:"selected_count"`
}
