package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/app/services"
	"github.com/teachteam/backend/internal/middleware"
)

// CandidateController handles candidate profile operations
type CandidateController struct {
	candidateService *services.CandidateService
}

// NewCandidateController creates a new CandidateController
func NewCandidateController(candidateService *services.CandidateService) *CandidateController {
	return &CandidateController{candidateService: candidateService}
}

// CreateCandidate attaches a candidate profile to an existing user
func (c *CandidateController) CreateCandidate(ctx *gin.Context) {
	var req dto.CreateCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid candidate data"))
		return
	}

	candidate, err := c.candidateService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, candidate)
}

// GetAllCandidates retrieves every candidate
func (c *CandidateController) GetAllCandidates(ctx *gin.Context) {
	candidates, err := c.candidateService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, candidates)
}

// GetCandidateByID retrieves a candidate by ID
func (c *CandidateController) GetCandidateByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}

	candidate, err := c.candidateService.GetByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, candidate)
}

// UpdateCandidate applies a partial update to a candidate profile
func (c *CandidateController) UpdateCandidate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}

	var req dto.UpdateCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid candidate data"))
		return
	}

	candidate, err := c.candidateService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, candidate)
}

// DeleteCandidate removes a candidate profile
func (c *CandidateController) DeleteCandidate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}

	if err := c.candidateService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessage("Candidate deleted"))
}
