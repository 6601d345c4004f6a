package models

// Course defines the course model based on the 'courses' table
type Course struct {
	ID       int64  `json:"courseID" db:"id" example:"1"`
	Code     string `json:"code" db:"code" example:"COSC2758"`
	Name     string `json:"name" db:"name" example:"Full Stack Development"`
	Semester string `json:"semester" db:"semester" example:"2025S1"`
}
