package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/app/services"
	"github.com/teachteam/backend/internal/middleware"
)

// LecturerCourseController handles lecturer-to-course assignments
type LecturerCourseController struct {
	courseService *services.CourseService
}

// NewLecturerCourseController creates a new LecturerCourseController
func NewLecturerCourseController(courseService *services.CourseService) *LecturerCourseController {
	return &LecturerCourseController{courseService: courseService}
}

// CreateLecturerCourse assigns a lecturer to a course
func (c *LecturerCourseController) CreateLecturerCourse(ctx *gin.Context) {
	var req dto.CreateLecturerCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid assignment data"))
		return
	}

	assignment, err := c.courseService.AssignLecturer(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, assignment)
}

// GetAllLecturerCourses retrieves every assignment
func (c *LecturerCourseController) GetAllLecturerCourses(ctx *gin.Context) {
	assignments, err := c.courseService.Assignments(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, assignments)
}

// DeleteLecturerCourse unassigns a lecturer from a course
func (c *LecturerCourseController) DeleteLecturerCourse(ctx *gin.Context) {
	lecturerID, ok := parseIDParam(ctx, "lecturerID")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseID")
	if !ok {
		return
	}

	if err := c.courseService.RemoveAssignment(ctx, lecturerID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessage("Lecturer course deleted"))
}
