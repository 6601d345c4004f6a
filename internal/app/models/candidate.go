package models

// Candidate defines the candidate profile based on the 'candidates' table.
// The primary key doubles as a foreign key to users. Profile fields are
// free text (comma-joined lists) and start out NULL at registration.
type Candidate struct {
	ID                  int64         `json:"candidateID" db:"id"`
	PreviousRoles       *string       `json:"previousRoles" db:"previous_roles"`
	Availability        *Availability `json:"availability" db:"availability"`
	Skills              *string       `json:"skills" db:"skills"`
	AcademicCredentials *string       `json:"academicCredentials" db:"academic_credentials"`

	User *User `json:"user,omitempty"` // Relation, no db tag
}
