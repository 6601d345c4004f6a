package models

// Lecturer defines the lecturer profile based on the 'lecturers' table.
// The primary key doubles as a foreign key to users.
type Lecturer struct {
	ID int64 `json:"lecturerID" db:"id"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}
