package models

// Admin defines an admin-console account based on the 'admins' table.
// Admin accounts are separate from regular users and only authenticate
// against the GraphQL surface.
type Admin struct {
	ID       int64  `json:"adminID" db:"id"`
	Username string `json:"username" db:"username"`
	Password string `json:"-" db:"password"`
}
