package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teachteam/backend/internal/app/models"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/app/services"
	"github.com/teachteam/backend/internal/middleware"
)

// AppliedCourseController handles candidate applications
type AppliedCourseController struct {
	applicationService *services.ApplicationService
}

// NewAppliedCourseController creates a new AppliedCourseController
func NewAppliedCourseController(applicationService *services.ApplicationService) *AppliedCourseController {
	return &AppliedCourseController{applicationService: applicationService}
}

// CreateAppliedCourse records a new application
func (c *AppliedCourseController) CreateAppliedCourse(ctx *gin.Context) {
	var req dto.CreateAppliedCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid application data"))
		return
	}

	application, err := c.applicationService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, application)
}

// GetAllAppliedCourses retrieves every application
func (c *AppliedCourseController) GetAllAppliedCourses(ctx *gin.Context) {
	applications, err := c.applicationService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, applications)
}

// GetAppliedCoursesByCandidate retrieves one candidate's applications
func (c *AppliedCourseController) GetAppliedCoursesByCandidate(ctx *gin.Context) {
	candidateID, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}

	applications, err := c.applicationService.GetByCandidate(ctx, candidateID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, applications)
}

// GetAppliedCoursesByCourse retrieves the applications to one course
func (c *AppliedCourseController) GetAppliedCoursesByCourse(ctx *gin.Context) {
	courseID, ok := parseIDParam(ctx, "courseID")
	if !ok {
		return
	}

	applications, err := c.applicationService.GetByCourse(ctx, courseID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, applications)
}

// GetAppliedCourse retrieves one application by its composite key
func (c *AppliedCourseController) GetAppliedCourse(ctx *gin.Context) {
	candidateID, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseID")
	if !ok {
		return
	}
	role := models.CourseRole(ctx.Param("role"))
	if !role.Valid() {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid role"))
		return
	}

	application, err := c.applicationService.Get(ctx, candidateID, courseID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, application)
}

// ReplaceAppliedCourse swaps one application for another atomically
func (c *AppliedCourseController) ReplaceAppliedCourse(ctx *gin.Context) {
	var req dto.ReplaceAppliedCourseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid application data"))
		return
	}

	if err := c.applicationService.Replace(ctx, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessage("Applied course replaced"))
}

// DeleteAppliedCourse withdraws an application identified by its
// composite key
func (c *AppliedCourseController) DeleteAppliedCourse(ctx *gin.Context) {
	candidateID, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}
	courseID, ok := parseIDParam(ctx, "courseID")
	if !ok {
		return
	}
	role := models.CourseRole(ctx.Param("role"))
	if !role.Valid() {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid role"))
		return
	}

	if err := c.applicationService.Delete(ctx, candidateID, courseID, role); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessage("Applied course deleted"))
}
