package models

import "time"

// Comment defines a lecturer's note about a candidate, based on the
// 'comments' table.
type Comment struct {
	ID          int64     `json:"commentID" db:"id"`
	Content     string    `json:"content" db:"content"`
	CandidateID int64     `json:"candidateID" db:"candidate_id"`
	LecturerID  int64     `json:"lecturerID" db:"lecturer_id"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	Candidate *Candidate `json:"candidate,omitempty"` // Relation, no db tag
	Lecturer  *Lecturer  `json:"lecturer,omitempty"`  // Relation, no db tag
}
