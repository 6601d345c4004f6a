package dto

// CreateCommentRequest is the payload for a lecturer's note on a candidate
type CreateCommentRequest struct {
	Content     string `json:"content" binding:"required"`
	CandidateID int64  `json:"candidateID" binding:"required"`
	LecturerID  int64  `json:"lecturerID" binding:"required"`
}

// UpdateCommentRequest replaces a comment's text
type UpdateCommentRequest struct {
	Content *string `json:"content,omitempty"`
}
