package models

// AppliedCourse defines a candidate's application to a course for a
// specific role, based on the 'applied_courses' table. The composite key
// (candidate, course, role) lets a candidate apply to the same course
// under both roles.
type AppliedCourse struct {
	CandidateID int64      `json:"candidateID" db:"candidate_id"`
	CourseID    int64      `json:"courseID" db:"course_id"`
	Role        CourseRole `json:"role" db:"role"`

	Candidate *Candidate `json:"candidate,omitempty"` // Relation, no db tag
	Course    *Course    `json:"course,omitempty"`    // Relation, no db tag
}
