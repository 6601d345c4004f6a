package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/app/services"
	"github.com/teachteam/backend/internal/middleware"
)

// CommentController handles lecturer comments on candidates
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// CreateComment records a lecturer's comment on a candidate
func (c *CommentController) CreateComment(ctx *gin.Context) {
	var req dto.CreateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid comment data"))
		return
	}

	comment, err := c.commentService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, comment)
}

// GetCommentsByCandidate retrieves the comments on one candidate,
// newest first
func (c *CommentController) GetCommentsByCandidate(ctx *gin.Context) {
	candidateID, ok := parseIDParam(ctx, "candidateID")
	if !ok {
		return
	}

	comments, err := c.commentService.GetByCandidate(ctx, candidateID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// GetCommentsByLecturer retrieves the comments one lecturer wrote,
// newest first
func (c *CommentController) GetCommentsByLecturer(ctx *gin.Context) {
	lecturerID, ok := parseIDParam(ctx, "lecturerID")
	if !ok {
		return
	}

	comments, err := c.commentService.GetByLecturer(ctx, lecturerID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comments)
}

// UpdateComment rewrites a comment's text
func (c *CommentController) UpdateComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "commentID")
	if !ok {
		return
	}

	var req dto.UpdateCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewMessage("Invalid comment data"))
		return
	}

	comment, err := c.commentService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, comment)
}

// DeleteComment removes a comment
func (c *CommentController) DeleteComment(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "commentID")
	if !ok {
		return
	}

	if err := c.commentService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.NewMessage("Comment deleted"))
}
