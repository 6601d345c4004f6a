package models

// UserRole defines the account role of a user
type UserRole string

const (
	RoleCandidate UserRole = "candidate"
	RoleLecturer  UserRole = "lecturer"
)

// Valid reports whether the role is one of the known user roles.
func (r UserRole) Valid() bool {
	return r == RoleCandidate || r == RoleLecturer
}

// CourseRole defines the position a candidate applies for
type CourseRole string

const (
	RoleTutor        CourseRole = "tutor"
	RoleLabAssistant CourseRole = "lab_assistant"
)

// Valid reports whether the role is one of the known course roles.
func (r CourseRole) Valid() bool {
	return r == RoleTutor || r == RoleLabAssistant
}

// Availability defines a candidate's work availability
type Availability string

const (
	PartTime Availability = "part-time"
	FullTime Availability = "full-time"
)

// Valid reports whether the availability is one of the known values.
func (a Availability) Valid() bool {
	return a == PartTime || a == FullTime
}
