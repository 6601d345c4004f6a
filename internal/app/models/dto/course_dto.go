package dto

// CreateCourseRequest is the payload for creating a course
type CreateCourseRequest struct {
	Code     string `json:"code" binding:"required" example:"COSC2758"`
	Name     string `json:"name" binding:"required" example:"Full Stack Development"`
	Semester string `json:"semester" binding:"required" example:"2025S1"`
}

// UpdateCourseRequest is a partial course update
type UpdateCourseRequest struct {
	Code     *string `json:"code,omitempty"`
	Name     *string `json:"name,omitempty"`
	Semester *string `json:"semester,omitempty"`
}

// CreateLecturerCourseRequest assigns a lecturer to a course
type CreateLecturerCourseRequest struct {
	LecturerID int64 `json:"lecturerID" binding:"required" example:"2"`
	CourseID   int64 `json:"courseID" binding:"required" example:"1"`
}
