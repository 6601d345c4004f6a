package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/app/services"
	"github.com/teachteam/backend/internal/middleware"
)

// CourseController handles course operations
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new CourseController
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{courseService: courseService}
}

// CreateCourse adds a new course
func (c *CourseController) CreateCourse(ctx *gin.Context) {
	var req dto.CreateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid course data"))
		return
	}

	course, err := c.courseService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, course)
}

// GetAllCourses retrieves every course
func (c *CourseController) GetAllCourses(ctx *gin.Context) {
	courses, err := c.courseService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// GetCourseByID retrieves a course by ID
func (c *CourseController) GetCourseByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "courseID")
	if !ok {
		return
	}

	course, err := c.courseService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// GetCourseLecturers retrieves the lecturers assigned to one course
func (c *CourseController) GetCourseLecturers(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "courseID")
	if !ok {
		return
	}

	assignments, err := c.courseService.AssignmentsByCourse(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, assignments)
}

// UpdateCourse applies a partial update to a course
func (c *CourseController) UpdateCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "courseID")
	if !ok {
		return
	}

	var req dto.UpdateCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid course data"))
		return
	}

	course, err := c.courseService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, course)
}

// DeleteCourse removes a course together with its lecturer assignments
func (c *CourseController) DeleteCourse(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "courseID")
	if !ok {
		return
	}

	if err := c.courseService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessage("Course deleted"))
}
