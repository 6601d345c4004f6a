package dto

import "github.com/teachteam/backend/internal/app/models"

// CreateAppliedCourseRequest is the payload for a new application
type CreateAppliedCourseRequest struct {
	CandidateID int64             `json:"candidateID" binding:"required" example:"1"`
	CourseID    int64             `json:"courseID" binding:"required" example:"1"`
	Role        models.CourseRole `json:"role" binding:"required,oneof=tutor lab_assistant" example:"tutor"`
}

// ApplicationKey identifies one application by its composite key
type ApplicationKey struct {
	CourseID int64             `json:"courseID" binding:"required"`
	Role     models.CourseRole `json:"role" binding:"required,oneof=tutor lab_assistant"`
}

// ReplaceAppliedCourseRequest swaps one application for another. Because
// (candidate, course, role) is the identifying key, a change of course or
// role is a delete plus an insert; both run in one transaction.
type ReplaceAppliedCourseRequest struct {
	CandidateID int64          `json:"candidateID" binding:"required"`
	Old         ApplicationKey `json:"old" binding:"required"`
	New         ApplicationKey `json:"new" binding:"required"`
}

// FilterApplicantsQuery holds the optional predicates for the lecturer
// applicant search. Absent fields mean no restriction.
type FilterApplicantsQuery struct {
	CourseID     *int64  `form:"courseID"`
	Role         *string `form:"role" binding:"omitempty,oneof=tutor lab_assistant"`
	Availability *string `form:"availability" binding:"omitempty,oneof=part-time full-time"`
	Skill        *string `form:"skill"`
	Name         *string `form:"name"`
	SortBy       string  `form:"sortBy" binding:"omitempty,oneof=course availability"`
	Order        string  `form:"order" binding:"omitempty,oneof=asc desc"`
}
