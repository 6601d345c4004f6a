package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/app/services"
	"github.com/teachteam/backend/internal/middleware"
)

// SelectedCandidateController handles lecturer selections and ranks
type SelectedCandidateController struct {
	selectionService *services.SelectionService
}

// NewSelectedCandidateController creates a new SelectedCandidateController
func NewSelectedCandidateController(selectionService *services.SelectionService) *SelectedCandidateController {
	return &SelectedCandidateController{selectionService: selectionService}
}

// CreateSelectedCandidate records a selection
func (c *SelectedCandidateController) CreateSelectedCandidate(ctx *gin.Context) {
	var req dto.CreateSelectedCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid selection data"))
		return
	}

	selection, err := c.selectionService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, selection)
}

// GetAllSelectedCandidates retrieves every selection
func (c *SelectedCandidateController) GetAllSelectedCandidates(ctx *gin.Context) {
	selections, err := c.selectionService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, selections)
}

// GetSelectedCandidatesByLecturer retrieves one lecturer's selections
// ordered by preference rank
func (c *SelectedCandidateController) GetSelectedCandidatesByLecturer(ctx *gin.Context) {
	lecturerID, ok := parseIDParam(ctx, "lecturerID")
	if !ok {
		return
	}

	selections, err := c.selectionService.GetByLecturer(ctx, lecturerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, selections)
}

// GetSelectedCandidate retrieves one selection by its composite key
func (c *SelectedCandidateController) GetSelectedCandidate(ctx *gin.Context) {
	lecturerID, ok := parseIDParam(ctx, "lecturerID")
	if !ok {
		return
	}
	candidateID, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}

	selection, err := c.selectionService.Get(ctx, lecturerID, candidateID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, selection)
}

// GetSelectedCandidatesByCandidate retrieves the selections naming one
// candidate
func (c *SelectedCandidateController) GetSelectedCandidatesByCandidate(ctx *gin.Context) {
	candidateID, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}

	selections, err := c.selectionService.GetByCandidate(ctx, candidateID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, selections)
}

// GetSelectionClassification buckets candidates into most selected,
// least selected and not selected
func (c *SelectedCandidateController) GetSelectionClassification(ctx *gin.Context) {
	classification, err := c.selectionService.Classification(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, classification)
}

// GetCandidateSelectionCounts returns how many lecturers selected each
// candidate
func (c *SelectedCandidateController) GetCandidateSelectionCounts(ctx *gin.Context) {
	counts, err := c.selectionService.SelectionCounts(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, counts)
}

// UpdateSelectedCandidate moves a selection to a new preference rank,
// swapping with whichever selection held that rank
func (c *SelectedCandidateController) UpdateSelectedCandidate(ctx *gin.Context) {
	lecturerID, ok := parseIDParam(ctx, "lecturerID")
	if !ok {
		return
	}
	candidateID, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}

	var req dto.UpdateSelectedCandidateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid selection data"))
		return
	}

	selection, err := c.selectionService.UpdateRanking(ctx, lecturerID, candidateID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, selection)
}

// DeleteSelectedCandidate withdraws a selection
func (c *SelectedCandidateController) DeleteSelectedCandidate(ctx *gin.Context) {
	lecturerID, ok := parseIDParam(ctx, "lecturerID")
	if !ok {
		return
	}
	candidateID, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}

	if err := c.selectionService.Delete(ctx, lecturerID, candidateID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessage("Selected candidate deleted"))
}
