package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/teachteam/backend/internal/app/models/dto"
	"github.com/teachteam/backend/internal/pkg/apperrors"
	"github.com/teachteam/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP responses. Every error
// body is a plain {"message": "..."} object.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	// 404
	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(404, dto.NewMessage("User not found"))
	case errors.Is(err, apperrors.ErrCandidateNotFound):
		c.JSON(404, dto.NewMessage("Candidate not found"))
	case errors.Is(err, apperrors.ErrLecturerNotFound):
		c.JSON(404, dto.NewMessage("Lecturer not found"))
	case errors.Is(err, apperrors.ErrCourseNotFound):
		c.JSON(404, dto.NewMessage("Course not found"))
	case errors.Is(err, apperrors.ErrAssignmentNotFound):
		c.JSON(404, dto.NewMessage("Lecturer course not found"))
	case errors.Is(err, apperrors.ErrApplicationNotFound):
		c.JSON(404, dto.NewMessage("Applied course not found"))
	case errors.Is(err, apperrors.ErrSelectionNotFound):
		c.JSON(404, dto.NewMessage("Selected candidate not found"))
	case errors.Is(err, apperrors.ErrCommentNotFound):
		c.JSON(404, dto.NewMessage("Comment not found"))
	case errors.Is(err, apperrors.ErrAdminNotFound):
		c.JSON(404, dto.NewMessage("Admin not found"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		c.JSON(404, dto.NewMessage(messageOf(err, "Resource not found")))

	// 409
	case errors.Is(err, apperrors.ErrEmailAlreadyInUse):
		c.JSON(409, dto.NewMessage("Email already in use"))
	case errors.Is(err, apperrors.ErrCourseCodeExists):
		c.JSON(409, dto.NewMessage("Course code already exists"))
	case errors.Is(err, apperrors.ErrAssignmentExists):
		c.JSON(409, dto.NewMessage("Lecturer already assigned to this course"))
	case errors.Is(err, apperrors.ErrApplicationExists):
		c.JSON(409, dto.NewMessage("Applied Course already exists"))
	case errors.Is(err, apperrors.ErrAlreadySelected):
		c.JSON(409, dto.NewMessage("Candidate already selected"))
	case errors.Is(err, apperrors.ErrConflict):
		c.JSON(409, dto.NewMessage(messageOf(err, "Conflict")))

	// 401 / 403
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(401, dto.NewMessage("Invalid credentials"))
	case errors.Is(err, apperrors.ErrTokenExpired):
		c.JSON(401, dto.NewMessage("Token expired"))
	case errors.Is(err, apperrors.ErrTokenInvalid):
		c.JSON(401, dto.NewMessage("Invalid token"))
	case errors.Is(err, apperrors.ErrAccountBlocked):
		c.JSON(403, dto.NewMessage("Your account has been blocked. Please contact admin."))
	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(403, dto.NewMessage("Permission denied"))

	// 400
	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(400, dto.NewMessage(messageOf(err, "Validation failed")))
	case errors.Is(err, apperrors.ErrBadRequest):
		c.JSON(400, dto.NewMessage(messageOf(err, "Bad request")))

	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
		c.JSON(500, dto.NewMessage("Internal server error"))
	}
}

// messageOf prefers the wrapped custom message over the fallback
func messageOf(err error, fallback string) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return fallback
}
