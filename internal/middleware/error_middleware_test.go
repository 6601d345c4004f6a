package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teachteam/backend/internal/pkg/apperrors"
)

func runHandleAPIError(t *testing.T, err error) (int, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

	HandleAPIError(ctx, err)

	var body struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return recorder.Code, body.Message
}

func TestHandleAPIErrorMapping(t *testing.T) {
	cases := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"user not found", apperrors.ErrUserNotFound, 404, "User not found"},
		{"candidate not found", apperrors.ErrCandidateNotFound, 404, "Candidate not found"},
		{"lecturer not found", apperrors.ErrLecturerNotFound, 404, "Lecturer not found"},
		{"course not found", apperrors.ErrCourseNotFound, 404, "Course not found"},
		{"comment not found", apperrors.ErrCommentNotFound, 404, "Comment not found"},
		{"selection not found", apperrors.ErrSelectionNotFound, 404, "Selected candidate not found"},
		{"application not found", apperrors.ErrApplicationNotFound, 404, "Applied course not found"},
		{"email in use", apperrors.ErrEmailAlreadyInUse, 409, "Email already in use"},
		{"duplicate application", apperrors.ErrApplicationExists, 409, "Applied Course already exists"},
		{"already selected", apperrors.ErrAlreadySelected, 409, "Candidate already selected"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, 401, "Invalid credentials"},
		{"blocked account", apperrors.ErrAccountBlocked, 403, "Your account has been blocked. Please contact admin."},
		{"permission denied", apperrors.ErrPermissionDenied, 403, "Permission denied"},
		{"unknown error", errors.New("boom"), 500, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, message := runHandleAPIError(t, tc.err)
			assert.Equal(t, tc.wantStatus, status)
			assert.Equal(t, tc.wantMessage, message)
		})
	}
}

func TestHandleAPIErrorWrappedSentinel(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), apperrors.ErrCourseNotFound)
	status, message := runHandleAPIError(t, wrapped)
	assert.Equal(t, 404, status)
	assert.Equal(t, "Course not found", message)
}

func TestHandleAPIErrorCustomMessage(t *testing.T) {
	status, message := runHandleAPIError(t, apperrors.NewValidationError("preferenceRanking is required"))
	assert.Equal(t, 400, status)
	assert.Equal(t, "preferenceRanking is required", message)
}
