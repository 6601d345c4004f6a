package models

// SelectedCandidate defines a lecturer's choice of a candidate, based on
// the 'selected_candidates' table. PreferenceRanking is unique per
// lecturer; collisions are resolved by swapping ranks.
type SelectedCandidate struct {
	LecturerID        int64 `json:"lecturerID" db:"lecturer_id"`
	CandidateID       int64 `json:"candidateID" db:"candidate_id"`
	PreferenceRanking int   `json:"preferenceRanking" db:"preference_ranking"`

	Lecturer  *Lecturer  `json:"lecturer,omitempty"`  // Relation, no db tag
	Candidate *Candidate `json:"candidate,omitempty"` // Relation, no db tag
}
