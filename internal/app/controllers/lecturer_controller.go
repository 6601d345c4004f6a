package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/app/services"
	"github.com/teachteam/backend/internal/middleware"
)

// LecturerController handles lecturer profiles and the applicant search
type LecturerController struct {
	lecturerService *services.LecturerService
}

// NewLecturerController creates a new LecturerController
func NewLecturerController(lecturerService *services.LecturerService) *LecturerController {
	return &LecturerController{lecturerService: lecturerService}
}

// CreateLecturer attaches a lecturer profile to an existing user
func (c *LecturerController) CreateLecturer(ctx *gin.Context) {
	var req dto.CreateLecturerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid lecturer data"))
		return
	}

	lecturer, err := c.lecturerService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, lecturer)
}

// GetAllLecturers retrieves every lecturer
func (c *LecturerController) GetAllLecturers(ctx *gin.Context) {
	lecturers, err := c.lecturerService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lecturers)
}

// GetLecturerByID retrieves a lecturer by ID
func (c *LecturerController) GetLecturerByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "lecturerID")
	if !ok {
		return
	}

	lecturer, err := c.lecturerService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, lecturer)
}

// GetLecturerCourses retrieves the courses a lecturer is assigned to
func (c *LecturerController) GetLecturerCourses(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "lecturerID")
	if !ok {
		return
	}

	courses, err := c.lecturerService.Courses(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, courses)
}

// FilterApplicants searches the applications to the lecturer's courses.
// All query parameters are optional and combine conjunctively.
func (c *LecturerController) FilterApplicants(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "lecturerID")
	if !ok {
		return
	}

	var query dto.FilterApplicantsQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid filter parameters"))
		return
	}

	applications, err := c.lecturerService.FilterApplicants(ctx, id, query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, applications)
}

// DeleteLecturer removes a lecturer profile
func (c *LecturerController) DeleteLecturer(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "lecturerID")
	if !ok {
		return
	}

	if err := c.lecturerService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessage("Lecturer deleted"))
}
