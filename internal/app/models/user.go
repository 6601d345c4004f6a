package models

import (
	"time"
)

// User defines the identity record based on the 'users' table. A user owns
// at most one Candidate or one Lecturer profile depending on its role; the
// profile row shares the user's primary key.
type User struct {
	ID        int64     `json:"userID" db:"id" example:"1"`
	Email     string    `json:"email" db:"email" example:"jane@university.edu"`
	Password  string    `json:"-" db:"password"`
	FirstName string    `json:"firstName" db:"first_name" example:"Jane"`
	LastName  string    `json:"lastName" db:"last_name" example:"Doe"`
	Role      UserRole  `json:"role" db:"role" example:"candidate"`
	IsBlocked bool      `json:"isBlocked" db:"is_blocked" example:"false"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`

	Candidate *Candidate `json:"candidate,omitempty"` // Relation, no db tag
	Lecturer  *Lecturer  `json:"lecturer,omitempty"`  // Relation, no db tag
}
