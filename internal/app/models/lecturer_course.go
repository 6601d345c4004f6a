package models

// LecturerCourse defines a teaching assignment based on the
// 'lecturer_courses' table.
type LecturerCourse struct {
	LecturerID int64 `json:"lecturerID" db:"lecturer_id"`
	CourseID   int64 `json:"courseID" db:"course_id"`

	Lecturer *Lecturer `json:"lecturer,omitempty"` // Relation, no db tag
	Course   *Course   `json:"course,omitempty"`   // Relation, no db tag
}
